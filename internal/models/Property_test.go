package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayImage(t *testing.T) {
	p := Property{}
	assert.Equal(t, DefaultPropertyImage, p.DisplayImage())

	p.ImageURL = "/uploads/properties/a.png"
	assert.Equal(t, "/uploads/properties/a.png", p.DisplayImage())

	p.ImageURLs = []string{"/uploads/properties/b.png", "/uploads/properties/c.png"}
	assert.Equal(t, "/uploads/properties/b.png", p.DisplayImage())
}
