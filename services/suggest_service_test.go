package services

import (
	"testing"

	"decor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "tan co dien", NormalizeInput("  Tân Cổ Điển "))
	assert.Equal(t, "phong khach", NormalizeInput("Phòng Khách"))
	assert.Equal(t, "", NormalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("", ""))
	assert.Equal(t, 1.0, CalculateSimilarity("decor", "decor"))
	assert.Less(t, CalculateSimilarity("decor", "dcor"), 1.0)
	assert.Greater(t, CalculateSimilarity("decor", "dcor"), 0.7)
	assert.Less(t, CalculateSimilarity("abc", "xyz"), 0.1)
}

func TestExtractRatingFromQuery(t *testing.T) {
	assert.Equal(t, 5, ExtractRatingFromQuery("dich vu 5 sao"))
	assert.Equal(t, 4, ExtractRatingFromQuery("4sao"))
	assert.Equal(t, -1, ExtractRatingFromQuery("dich vu trang tri"))
}

func TestParseStyleFromQuery(t *testing.T) {
	style, rating := ParseStyleFromQuery("trang trí tân cổ điển 5 sao")
	assert.Equal(t, "tân cổ điển", style)
	assert.Equal(t, 5, rating)

	style, rating = ParseStyleFromQuery("phòng khách hiện đại")
	assert.Equal(t, "hiện đại", style)
	assert.Equal(t, -1, rating)

	style, _ = ParseStyleFromQuery("quán cà phê")
	assert.Equal(t, "", style)
}

func TestPrepareProvinceList(t *testing.T) {
	services := []models.DecorService{
		{Province: "Hà Nội"},
		{Province: "Hà Nội"},
		{Province: "Đà Nẵng"},
		{Province: ""},
	}
	list := PrepareProvinceList(services)
	assert.Len(t, list, 2)
	assert.Contains(t, list, "ha noi")
	assert.Contains(t, list, "da nang")
}

func TestFilterAndScoreServices(t *testing.T) {
	services := []models.DecorService{
		{ID: 1, Name: "Trang trí phòng khách hiện đại", Style: "hiện đại", Province: "Hà Nội", Star: 5},
		{ID: 2, Name: "Trang trí tiệc cưới", Style: "tân cổ điển", Province: "Đà Nẵng", Star: 4},
		{ID: 3, Name: "Sơn sửa văn phòng", Style: "tối giản", Province: "Hà Nội", Star: 3},
	}

	scored := FilterAndScoreServices("trang trí hiện đại hà nội", services)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Service.ID)

	// Điểm giảm dần
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestFilterAndScoreServicesEmpty(t *testing.T) {
	scored := FilterAndScoreServices("bất kỳ", nil)
	assert.Empty(t, scored)
}
