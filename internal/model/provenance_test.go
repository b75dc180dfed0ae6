package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceSetOrderAndDedup(t *testing.T) {
	s := NewSourceSet()
	s.Add(SourceJSONLD)
	s.Add(SourceOpenGraph)
	s.Add(SourceJSONLD)
	s.Add(SourceSynthesis)

	assert.Equal(t, []string{SourceJSONLD, SourceOpenGraph, SourceSynthesis}, s.Tags())
	assert.True(t, s.Has(SourceOpenGraph))
	assert.False(t, s.Has(SourceVision))
}

func TestSourceSetTagsReturnsCopy(t *testing.T) {
	s := NewSourceSet()
	s.Add(SourceVision)

	tags := s.Tags()
	tags[0] = "mutated"
	assert.Equal(t, []string{SourceVision}, s.Tags())
}
