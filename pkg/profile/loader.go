package profile

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Load reads profile data from a JSON file.
func Load(path string) (data Data, err error) {
	var file *os.File
	file, err = os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open profile file: %s", path)
		return data, err
	}
	defer file.Close()

	data, err = Decode(file)
	if err != nil {
		err = errors.Wrapf(err, "failed to load profile: %s", path)
		return data, err
	}

	return data, err
}

// Decode parses, normalizes and validates profile JSON.
func Decode(r io.Reader) (data Data, err error) {
	err = json.NewDecoder(r).Decode(&data)
	if err != nil {
		err = errors.Wrap(err, "failed to parse profile JSON")
		return data, err
	}

	data.Normalize()

	err = data.Validate()
	if err != nil {
		err = errors.Wrap(err, "profile validation failed")
		return data, err
	}

	return data, err
}

// Normalize replaces absent lists with empty ones and derives the full name
// when only its parts are present.
func (d *Data) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.FeaturedPosts == nil {
		d.FeaturedPosts = []FeaturedPost{}
	}
	if d.Recommendations == nil {
		d.Recommendations = []Recommendation{}
	}

	if strings.TrimSpace(d.Profile.FullName) == "" {
		d.Profile.FullName = strings.TrimSpace(d.Profile.FirstName + " " + d.Profile.LastName)
	}
}

// Validate checks that the profile data is well-formed.
func (d *Data) Validate() (err error) {
	if strings.TrimSpace(d.Profile.FullName) == "" {
		err = errors.New("profile fullName is required")
		return err
	}

	for i, exp := range d.Experience {
		if exp.Title == "" {
			err = errors.Errorf("experience at index %d missing title", i)
			return err
		}
		if exp.Company == "" {
			err = errors.Errorf("experience at index %d missing company", i)
			return err
		}
	}

	for i, edu := range d.Education {
		if edu.School == "" {
			err = errors.Errorf("education at index %d missing school", i)
			return err
		}
	}

	for i, cert := range d.Certifications {
		if cert.Name == "" {
			err = errors.Errorf("certification at index %d missing name", i)
			return err
		}
	}

	for i, skill := range d.Skills {
		if skill.Name == "" {
			err = errors.Errorf("skill at index %d missing name", i)
			return err
		}
	}

	for i, post := range d.FeaturedPosts {
		if post.PostURL == "" {
			err = errors.Errorf("featured post at index %d missing postUrl", i)
			return err
		}
	}

	for i, rec := range d.Recommendations {
		if rec.RecommenderName == "" {
			err = errors.Errorf("recommendation at index %d missing recommenderName", i)
			return err
		}
		if rec.Text == "" {
			err = errors.Errorf("recommendation at index %d missing text", i)
			return err
		}
	}

	return err
}

// CurrentPosition returns the first experience entry, which upstream
// orders most recent first.
func (d *Data) CurrentPosition() (exp Experience, ok bool) {
	if len(d.Experience) == 0 {
		return exp, ok
	}
	exp = d.Experience[0]
	ok = true
	return exp, ok
}
