package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"decor/dto"
	"decor/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Danh sách từ khóa phong cách trang trí dùng cho gợi ý tìm kiếm
var (
	modernKeywords     = []string{"hiện đại", "hien dai", "modern"}
	neoclassicKeywords = []string{"tân cổ điển", "tan co dien", "cổ điển", "co dien", "neoclassic"}
	minimalKeywords    = []string{"tối giản", "toi gian", "minimal", "minimalist"}
)

var starRegex = regexp.MustCompile(`(\d+)\s*sao`)

// NormalizeInput chuẩn hóa chuỗi tìm kiếm: bỏ dấu, thường hóa
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized = append(normalized, NormalizeInput(kw))
	}
	return closestmatch.New(normalized, []int{2, 3})
}

// CalculateSimilarity tính độ tương đồng giữa hai chuỗi theo Levenshtein
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Hai chuỗi rỗng coi như giống nhau hoàn toàn
	}

	return 1.0 - float64(distance)/maxLen
}

// ExtractRatingFromQuery tìm số sao trong câu tìm kiếm, -1 nếu không có
func ExtractRatingFromQuery(query string) int {
	match := starRegex.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return rating
}

// ParseStyleFromQuery đoán phong cách trang trí từ câu tìm kiếm.
// Trả về tên phong cách chuẩn và số sao nếu có, chuỗi rỗng nếu không đoán được.
func ParseStyleFromQuery(query string) (string, int) {
	normalizedQuery := NormalizeInput(query)
	rating := ExtractRatingFromQuery(normalizedQuery)

	modernMatcher := createMatcher(modernKeywords)
	neoclassicMatcher := createMatcher(neoclassicKeywords)
	minimalMatcher := createMatcher(minimalKeywords)

	if match := neoclassicMatcher.Closest(normalizedQuery); match != "" && strings.Contains(normalizedQuery, match) {
		return "tân cổ điển", rating
	}
	if match := modernMatcher.Closest(normalizedQuery); match != "" && strings.Contains(normalizedQuery, match) {
		return "hiện đại", rating
	}
	if match := minimalMatcher.Closest(normalizedQuery); match != "" && strings.Contains(normalizedQuery, match) {
		return "tối giản", rating
	}

	return "", rating
}

// PrepareProvinceList gom danh sách tỉnh thành duy nhất cho closestmatch
func PrepareProvinceList(services []models.DecorService) []string {
	uniqueValues := make(map[string]bool)
	for _, svc := range services {
		if svc.Province != "" {
			uniqueValues[NormalizeInput(svc.Province)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// calculateScore tính điểm phù hợp của một dịch vụ với câu tìm kiếm
func calculateScore(query string, svc models.DecorService, cmProvince *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeInput(query)
	style, rating := ParseStyleFromQuery(normalizedQuery)
	score := 0

	if style != "" && NormalizeInput(svc.Style) == NormalizeInput(style) {
		score += 20
	}
	if rating != -1 && int(svc.Star) == rating {
		score += 15
	}
	if cmProvince != nil && cmProvince.Closest(normalizedQuery) == NormalizeInput(svc.Province) {
		score += 13
	}

	normalizedName := NormalizeInput(svc.Name)
	similarity := CalculateSimilarity(normalizedQuery, normalizedName)
	if similarity > 0.7 || strings.Contains(normalizedName, normalizedQuery) {
		score += 12
	}

	return score
}

// FilterAndScoreServices chấm điểm song song và xếp hạng các dịch vụ
func FilterAndScoreServices(query string, services []models.DecorService) []dto.ScoredService {
	var cmProvince *closestmatch.ClosestMatch
	if provinces := PrepareProvinceList(services); len(provinces) > 0 {
		cmProvince = createMatcher(provinces)
	}

	scoreCh := make(chan dto.ScoredService, len(services))
	var wg sync.WaitGroup

	for _, svc := range services {
		wg.Add(1)
		go func(svc models.DecorService) {
			defer wg.Done()
			score := calculateScore(query, svc, cmProvince)
			if score > 0 {
				scoreCh <- dto.ScoredService{
					Service: svc,
					Score:   score,
				}
			}
		}(svc)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredService
	for scoredSvc := range scoreCh {
		scored = append(scored, scoredSvc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
