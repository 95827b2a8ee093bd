package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	r := NewAssetResolver("http://localhost:8080/")

	tests := []struct {
		name   string
		domain string
		value  string
		want   string
	}{
		{"empty stays empty", "equipment", "", ""},
		{"absolute http untouched", "equipment", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"absolute https untouched", "equipment", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"storage path keeps its location", "equipment", "storage/uploads/a.jpg", "http://localhost:8080/storage/uploads/a.jpg"},
		{"bare filename moves under domain", "equipment", "cam.jpg", "http://localhost:8080/storage/img/equipment/cam.jpg"},
		{"leading slash trimmed", "profile", "/me.png", "http://localhost:8080/storage/img/profile/me.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ImageURL(tt.domain, tt.value))
		})
	}
}

func TestImageURLPtr(t *testing.T) {
	r := NewAssetResolver("http://localhost:8080")

	assert.Nil(t, r.ImageURLPtr("profile", nil))

	empty := ""
	assert.Nil(t, r.ImageURLPtr("profile", &empty))

	value := "me.png"
	resolved := r.ImageURLPtr("profile", &value)
	assert.Equal(t, "http://localhost:8080/storage/img/profile/me.png", *resolved)
}
