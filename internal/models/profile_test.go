package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRankForXP(t *testing.T) {
	assert.Equal(t, "Seeker", RankForXP(0))
	assert.Equal(t, "Seeker", RankForXP(499))
	assert.Equal(t, "Disciple", RankForXP(500))
	assert.Equal(t, "Scribe", RankForXP(1500))
	assert.Equal(t, "Prophet", RankForXP(19999))
	assert.Equal(t, "Anointed", RankForXP(20000))
	assert.Equal(t, "Anointed", RankForXP(1000000))
}

func TestWisdomLevel(t *testing.T) {
	assert.Equal(t, 0, WisdomLevel(0))
	assert.Equal(t, 0, WisdomLevel(300))
	assert.Equal(t, 0, WisdomLevel(499))
	assert.Equal(t, 1, WisdomLevel(500))
	assert.Equal(t, 1, WisdomLevel(1499))
	assert.Equal(t, 2, WisdomLevel(1500))
	assert.Equal(t, 3, WisdomLevel(3000))
	assert.Equal(t, 4, WisdomLevel(5000))
	assert.Equal(t, 5, WisdomLevel(7500))
	assert.Equal(t, 5, WisdomLevel(999999))
}

func TestNewPlayerProfileDefaults(t *testing.T) {
	profile := NewPlayerProfile()

	assert.Equal(t, "Seeker", profile.Rank)
	assert.Zero(t, profile.TotalXP)
	assert.NotNil(t, profile.Achievements)
	assert.NotNil(t, profile.CategoryProgress)
}

func TestPlayerProfileCloneIsIndependent(t *testing.T) {
	original := NewPlayerProfile()
	original.TotalXP = 700
	original.Achievements[AchievementFirstSteps] = time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	original.CategoryProgress["Kings & Rulers"] = 300

	cloned := original.Clone()
	cloned.Achievements[AchievementUnbroken] = time.Now()
	cloned.CategoryProgress["Kings & Rulers"] = 999

	assert.Len(t, original.Achievements, 1)
	assert.Equal(t, 300, original.CategoryProgress["Kings & Rulers"])
}
