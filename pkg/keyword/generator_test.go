package keyword

import (
	"testing"

	"sellerkit-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_BothPlatforms(t *testing.T) {
	results := Generate("headphones", []string{"amazon", "flipkart"})

	assert.Len(t, results.Amazon, 5)
	assert.Len(t, results.Flipkart, 5)

	assert.Equal(t, entity.KeywordResult{
		Keyword:     "headphones wireless",
		Volume:      45000,
		Competition: entity.CompetitionMedium,
	}, results.Amazon[0])

	assert.Equal(t, entity.KeywordResult{
		Keyword:     "headphones wireless",
		Volume:      27000,
		Competition: entity.CompetitionMedium,
	}, results.Flipkart[0])
}

func TestGenerate_FlipkartVolumesScaled(t *testing.T) {
	results := Generate("laptop stand", []string{"amazon", "flipkart"})

	expected := []int{27000, 19260, 17340, 9360, 7380}
	for i, want := range expected {
		assert.Equal(t, want, results.Flipkart[i].Volume)
	}
	for i := range results.Amazon {
		assert.Equal(t, results.Amazon[i].Keyword, results.Flipkart[i].Keyword)
		assert.Equal(t, results.Amazon[i].Competition, results.Flipkart[i].Competition)
	}
}

func TestGenerate_AmazonOnly(t *testing.T) {
	results := Generate("headphones", []string{"amazon"})

	assert.Len(t, results.Amazon, 5)
	assert.NotNil(t, results.Flipkart)
	assert.Empty(t, results.Flipkart)
}

func TestGenerate_NoPlatforms(t *testing.T) {
	results := Generate("headphones", []string{})

	assert.NotNil(t, results.Amazon)
	assert.NotNil(t, results.Flipkart)
	assert.Empty(t, results.Amazon)
	assert.Empty(t, results.Flipkart)
}

func TestGenerate_UnknownPlatformIgnored(t *testing.T) {
	results := Generate("headphones", []string{"ebay"})

	assert.Empty(t, results.Amazon)
	assert.Empty(t, results.Flipkart)
}
