// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// MaxScore is the top of the canonical rating scale. Overall scores and
// criterion scores are both stored on 0..MaxScore.
const MaxScore = 10

// Score is a rating on the canonical 0-10 scale.
type Score float64

// Valid reports whether the score lies within 0..MaxScore.
func (s Score) Valid() bool {
	return s >= 0 && s <= MaxScore && !math.IsNaN(float64(s))
}

// Stars converts the score to the five-star scale, rounded to one decimal.
func (s Score) Stars() float64 {
	return math.Round(float64(s)/2*10) / 10
}

// Percent returns the score as a 0-100 width, used for progress bars.
func (s Score) Percent() int {
	p := int(math.Round(float64(s) / MaxScore * 100))
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// String formats the score with at most one decimal ("8", "8.5").
func (s Score) String() string {
	return strconv.FormatFloat(math.Round(float64(s)*10)/10, 'f', -1, 64)
}

// ReviewDetails extends a review content row. There is at most one per
// content id.
type ReviewDetails struct {
	ID           uuid.UUID         `json:"id"`
	ContentID    uuid.UUID         `json:"content_id"`
	OverallScore Score             `json:"overall_score"`
	YouTubeURL   *string           `json:"youtube_url"`
	Gallery      []string          `json:"gallery"`
	ProductSpecs ProductSpecs      `json:"product_specs"`
	Criteria     []RatingCriterion `json:"rating_criteria"`
}

// RatingCriterion is one line of a review's score breakdown.
type RatingCriterion struct {
	ID        uuid.UUID `json:"id"`
	ReviewID  uuid.UUID `json:"review_id"`
	Name      string    `json:"name"`
	Score     Score     `json:"score"`
	SortOrder int       `json:"sort_order"`
}

// SpecPair is a single label/value row of a product specification table.
type SpecPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductSpecs is the ordered specification table of a review. Stored rows
// come in three shapes: a JSON array of pairs, an object map, or either of
// those serialized again into a JSON string. All of them decode; anything
// else decodes to an empty table.
type ProductSpecs []SpecPair

// ParseProductSpecs decodes any stored product_specs shape. It never fails;
// malformed input yields an empty, non-nil table.
func ParseProductSpecs(raw []byte) ProductSpecs {
	return parseSpecs(raw, 0)
}

func parseSpecs(raw []byte, depth int) ProductSpecs {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || depth > 1 {
		return ProductSpecs{}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ProductSpecs{}
		}
		return parseSpecs([]byte(s), depth+1)
	case '[':
		var pairs []SpecPair
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return ProductSpecs{}
		}
		out := ProductSpecs{}
		for _, p := range pairs {
			if p.Label == "" && p.Value == "" {
				continue
			}
			out = append(out, p)
		}
		return out
	case '{':
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return ProductSpecs{}
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(ProductSpecs, 0, len(keys))
		for _, k := range keys {
			out = append(out, SpecPair{Label: k, Value: specValue(m[k])})
		}
		return out
	}
	return ProductSpecs{}
}

// specValue renders a free-form map value as display text.
func specValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// UnmarshalJSON accepts every stored shape and never returns an error.
func (p *ProductSpecs) UnmarshalJSON(data []byte) error {
	*p = ParseProductSpecs(data)
	return nil
}

// MarshalJSON always writes the canonical array-of-pairs shape.
func (p ProductSpecs) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]SpecPair(p))
}

// Value implements driver.Valuer so the table can be written to JSONB.
func (p ProductSpecs) Value() (driver.Value, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB columns.
func (p *ProductSpecs) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = ProductSpecs{}
	case []byte:
		*p = ParseProductSpecs(v)
	case string:
		*p = ParseProductSpecs([]byte(v))
	default:
		*p = ProductSpecs{}
	}
	return nil
}
