package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes the interview being conducted: the topic domain the
// questions cover and the pacing of one sitting.
type Profile struct {
	Topic              string `yaml:"topic"`
	QuestionCount      int    `yaml:"question_count"`
	PrepSeconds        int    `yaml:"prep_seconds"`
	MaxExperienceYears int    `yaml:"max_experience_years"`
}

// DefaultProfile reproduces the stock Excel assessment.
func DefaultProfile() Profile {
	return Profile{
		Topic:              "Microsoft Excel",
		QuestionCount:      10,
		PrepSeconds:        40,
		MaxExperienceYears: 50,
	}
}

// LoadProfile reads the interview profile from a YAML file, falling back to
// the default profile when the file does not exist.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultProfile(), nil
		}
		return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	if err := validateProfile(profile); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

func validateProfile(profile Profile) error {
	if profile.Topic == "" {
		return errors.New("topic must not be empty")
	}
	if profile.QuestionCount <= 0 {
		return errors.New("question_count must be greater than 0")
	}
	if profile.PrepSeconds <= 0 {
		return errors.New("prep_seconds must be greater than 0")
	}
	if profile.MaxExperienceYears <= 0 {
		return errors.New("max_experience_years must be greater than 0")
	}
	return nil
}
