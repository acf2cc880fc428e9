// Package catalog holds the compiled-in level, question and video content.
package catalog

import (
	"fmt"

	"justice-play/internal/domain"
)

// Catalog is read-only content keyed by age tier.
type Catalog struct {
	levels map[domain.AgeTier][]domain.LevelDefinition
	videos []domain.Video
}

// New builds a catalog from explicit content. Used by tests and by Default.
func New(levels map[domain.AgeTier][]domain.LevelDefinition, videos []domain.Video) *Catalog {
	return &Catalog{levels: levels, videos: videos}
}

// Default returns the built-in content for every tier.
func Default() *Catalog {
	return New(map[domain.AgeTier][]domain.LevelDefinition{
		domain.AgeTierJunior: juniorLevels(),
		domain.AgeTierSenior: seniorLevels(),
	}, libraryVideos())
}

// Levels returns the tier's levels in declaration order.
func (c *Catalog) Levels(tier domain.AgeTier) []domain.LevelDefinition {
	return c.levels[tier]
}

// Level looks up one level of a tier.
func (c *Catalog) Level(tier domain.AgeTier, levelID int) (domain.LevelDefinition, error) {
	for _, level := range c.levels[tier] {
		if level.ID == levelID {
			return level, nil
		}
	}
	return domain.LevelDefinition{}, domain.ErrUnknownLevel
}

// HasLevel reports whether levelID exists in the tier's catalog.
func (c *Catalog) HasLevel(tier domain.AgeTier, levelID int) bool {
	_, err := c.Level(tier, levelID)
	return err == nil
}

// Videos returns the library entries shown to the tier.
func (c *Catalog) Videos(tier domain.AgeTier) []domain.Video {
	out := make([]domain.Video, 0, len(c.videos))
	for _, v := range c.videos {
		if v.ShownTo(tier) {
			out = append(out, v)
		}
	}
	return out
}

// Video looks up a library entry regardless of tier.
func (c *Catalog) Video(videoID int) (domain.Video, error) {
	for _, v := range c.videos {
		if v.ID == videoID {
			return v, nil
		}
	}
	return domain.Video{}, domain.ErrUnknownVideo
}

// Validate checks structural rules of the content: dense level ids starting at 1,
// four options per question, in-range answer keys and ids aligned across tiers.
func (c *Catalog) Validate() error {
	var reference []domain.LevelDefinition
	for _, tier := range domain.AgeTiers() {
		levels := c.levels[tier]
		if len(levels) == 0 {
			return fmt.Errorf("tier %s: no levels", tier)
		}
		for i, level := range levels {
			if level.ID != i+1 {
				return fmt.Errorf("tier %s: level at position %d has id %d", tier, i, level.ID)
			}
			if level.PointsToEarn <= 0 {
				return fmt.Errorf("tier %s level %d: points must be positive", tier, level.ID)
			}
			if len(level.Questions) == 0 {
				return fmt.Errorf("tier %s level %d: no questions", tier, level.ID)
			}
			for _, q := range level.Questions {
				if len(q.Options) != 4 {
					return fmt.Errorf("tier %s level %d question %d: want 4 options, got %d", tier, level.ID, q.ID, len(q.Options))
				}
				if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
					return fmt.Errorf("tier %s level %d question %d: answer index out of range", tier, level.ID, q.ID)
				}
			}
		}
		if reference == nil {
			reference = levels
			continue
		}
		if len(levels) != len(reference) {
			return fmt.Errorf("tier %s: %d levels, want %d", tier, len(levels), len(reference))
		}
		for i := range levels {
			if len(levels[i].Questions) != len(reference[i].Questions) {
				return fmt.Errorf("tier %s level %d: question count differs across tiers", tier, levels[i].ID)
			}
		}
	}
	return nil
}
