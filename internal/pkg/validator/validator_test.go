package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190163d-8694-739b-aea5-966c26f8ad91"))

	// v4 is rejected; only v7 keys are issued.
	assert.False(t, IsValidUUID("9b2d7a44-5f11-4c0a-9a35-7f2dd0a1b111"))
	assert.False(t, IsValidUUID("0190163D-8694-739B-AEA5-966C26F8AD91"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(1))
	assert.True(t, IsValidAmount(150_000))
	assert.False(t, IsValidAmount(0))
	assert.False(t, IsValidAmount(-500))
	assert.False(t, IsValidAmount(2_000_000_000_000))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency("USD"))
	assert.True(t, IsValidCurrency("IDR"))
	assert.False(t, IsValidCurrency("usd"))
	assert.False(t, IsValidCurrency("US"))
	assert.False(t, IsValidCurrency("USDT"))
}

func TestIsValidBusinessName(t *testing.T) {
	assert.True(t, IsValidBusinessName("Warung Kopi"))
	assert.False(t, IsValidBusinessName("A"))
	assert.False(t, IsValidBusinessName("   "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-14")
	assert.True(t, ok)
	_, ok = IsValidDate("14-03-2025")
	assert.False(t, ok)
}
