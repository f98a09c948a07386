package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/seongmin-h/decisionlog/backend/internal/config"
	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert test decisions into the configured storage",
	Long: `Insert a batch of weighted random test decisions so the analysis
endpoints have something to chew on. Existing seeded decisions for the
user are removed first.`,
	RunE: runSeed,
}

var seedUserID string

func init() {
	seedCmd.Flags().StringVar(&seedUserID, "user", "local", "User ID to seed decisions for")
}

const seedTitlePrefix = "테스트 판단"

var seedCategoryIDs = []string{
	"invest", "health", "study", "shopping", "career", "daily", "relationship",
}

var seedTagsByCategory = map[string][]string{
	"invest":       {"리스크", "진입", "손절", "타이밍", "지표", "포지션"},
	"health":       {"루틴", "수면", "운동", "식단", "회복", "컨디션"},
	"study":        {"집중", "계획", "복습", "몰입", "정리", "목표"},
	"shopping":     {"가격", "비교", "필요", "충동", "리뷰", "가성비"},
	"career":       {"우선순위", "피드백", "성과", "리더십", "협업", "성장"},
	"daily":        {"습관", "정리", "기록", "일정", "여유", "생산성"},
	"relationship": {"대화", "배려", "갈등", "경청", "약속", "감정"},
}

var seedNotesByCategory = map[string][]string{
	"invest": {
		"진입 근거와 손절 기준을 기록했습니다.",
		"리스크를 고려했지만 변동성이 컸습니다.",
		"시장 흐름을 반영해 판단했습니다.",
	},
	"health": {
		"컨디션을 고려해 강도를 조절했습니다.",
		"루틴 유지에 방해 요소가 있었습니다.",
		"작은 습관을 꾸준히 이어갔습니다.",
	},
	"study": {
		"집중이 잘 되는 시간대를 활용했습니다.",
		"복습 시간을 충분히 확보했습니다.",
		"목표 대비 진행이 느렸습니다.",
	},
	"shopping": {
		"비교 후 구매했지만 기대와 달랐습니다.",
		"필요성보다 감정이 앞섰습니다.",
		"리뷰를 참고해 선택했습니다.",
	},
	"career": {
		"우선순위를 재정렬해 결정했습니다.",
		"피드백을 반영해 개선했습니다.",
		"협업 과정에서 변수가 생겼습니다.",
	},
	"daily": {
		"일정을 정리해 여유를 만들었습니다.",
		"예상치 못한 변수가 있었습니다.",
		"기록을 통해 흐름을 점검했습니다.",
	},
	"relationship": {
		"상대의 관점을 듣고 조율했습니다.",
		"감정적으로 반응해 아쉬웠습니다.",
		"대화를 통해 오해를 풀었습니다.",
	},
}

type weighted struct {
	value  models.DecisionResult
	weight int
}

var seedResultWeights = map[string][]weighted{
	"invest":       {{models.ResultPositive, 45}, {models.ResultNeutral, 25}, {models.ResultNegative, 30}},
	"health":       {{models.ResultPositive, 55}, {models.ResultNeutral, 25}, {models.ResultNegative, 20}},
	"study":        {{models.ResultPositive, 50}, {models.ResultNeutral, 30}, {models.ResultNegative, 20}},
	"shopping":     {{models.ResultPositive, 40}, {models.ResultNeutral, 25}, {models.ResultNegative, 35}},
	"career":       {{models.ResultPositive, 45}, {models.ResultNeutral, 35}, {models.ResultNegative, 20}},
	"daily":        {{models.ResultPositive, 50}, {models.ResultNeutral, 30}, {models.ResultNegative, 20}},
	"relationship": {{models.ResultPositive, 45}, {models.ResultNeutral, 30}, {models.ResultNegative, 25}},
}

func weightedPick(rng *rand.Rand, items []weighted) models.DecisionResult {
	total := 0
	for _, item := range items {
		total += item.weight
	}
	r := rng.Intn(total)
	for _, item := range items {
		r -= item.weight
		if r < 0 {
			return item.value
		}
	}
	return items[len(items)-1].value
}

func randomBetween(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

// pickRecentOffset biases seeded decisions toward the last few days.
func pickRecentOffset(rng *rand.Rand) int {
	switch r := rng.Intn(100); {
	case r < 45:
		return randomBetween(rng, 0, 2)
	case r < 80:
		return randomBetween(rng, 3, 6)
	case r < 95:
		return randomBetween(rng, 7, 14)
	default:
		return randomBetween(rng, 15, 28)
	}
}

func pickTags(rng *rand.Rand, tags []string, count int) []string {
	shuffled := append([]string(nil), tags...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := cmd.Context()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	// Remove previously seeded decisions for the user
	existing, err := repo.List(ctx, seedUserID)
	if err != nil {
		return fmt.Errorf("failed to list decisions: %w", err)
	}
	removed := 0
	for _, d := range existing {
		if strings.HasPrefix(d.Title, seedTitlePrefix) {
			if err := repo.Delete(ctx, seedUserID, d.ID); err != nil {
				return fmt.Errorf("failed to remove seeded decision: %w", err)
			}
			removed++
		}
	}

	inserted := 0
	for idx, categoryID := range seedCategoryIDs {
		weights := seedResultWeights[categoryID]
		for i := 0; i < 5; i++ {
			completed := i < 3

			offset := i + pickRecentOffset(rng) + idx
			createdAt := now.AddDate(0, 0, -offset)
			createdAt = time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(),
				randomBetween(rng, 7, 22), randomBetween(rng, 0, 59), 0, 0, time.UTC)

			result := models.ResultPending
			resolvedAt := ""
			confidence := randomBetween(rng, 2, 4)
			var meta models.DecisionMeta
			if completed {
				result = weightedPick(rng, weights)
				resolvedAt = createdAt.Add(time.Duration(randomBetween(rng, 2, 48)) * time.Hour).Format(time.RFC3339)
				confidence = randomBetween(rng, 2, 5)
				if rng.Float64() > 0.25 {
					meta = models.DecisionMeta{
						"reflection":       "테스트 회고입니다.",
						"reflectionPrompt": "판단의 근거는 충분했나?",
					}
				}
			}

			decision := &models.Decision{
				ID:         uuid.New().String(),
				UserID:     seedUserID,
				CategoryID: categoryID,
				Title:      fmt.Sprintf("%s - %s %d", seedTitlePrefix, categoryID, i+1),
				Notes:      seedNotesByCategory[categoryID][rng.Intn(len(seedNotesByCategory[categoryID]))],
				Tags:       pickTags(rng, seedTagsByCategory[categoryID], 2+i%2),
				Confidence: confidence,
				Result:     result,
				Meta:       meta,
				CreatedAt:  createdAt.Format(time.RFC3339),
				ResolvedAt: resolvedAt,
			}

			if err := repo.Create(ctx, decision); err != nil {
				return fmt.Errorf("failed to insert seeded decision: %w", err)
			}
			inserted++
		}
	}

	fmt.Printf("Removed %d old seeded decisions, inserted %d for user %s\n", removed, inserted, seedUserID)
	return nil
}
