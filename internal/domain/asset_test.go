package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		filename string
		want     string
	}{
		{"plain host", "http://localhost:5050/", "climate.jpg", "http://localhost:5050/static/climate.jpg"},
		{"tls host", "https://news.example.com/", "guardian.png", "https://news.example.com/static/guardian.png"},
		{"empty filename", "http://localhost/", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssetURL(tt.baseURL, tt.filename))
		})
	}
}
