package tests

import (
	"bytes"
	"testing"
	"time"

	"waiterboard/internal/service"

	"github.com/stretchr/testify/assert"
)

func order1Time() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func TestDefaultPayCodeGenerator(t *testing.T) {
	generator := service.DefaultPayCodeGenerator{BaseURL: "https://pay.example.com"}

	png, err := generator.Generate("o-42")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
