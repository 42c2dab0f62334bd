package models

import "encoding/json"

// Access type for harvest rows the service reads
const (
	AccessPublic = "Public"
)

// Request types

// ApplicationPlanRequest is the body of POST /api/application_plan.
// Choices are hunt codes in first, second, third order. Pool stays raw so
// an absent key (default pool) differs from "pool": null or "".
type ApplicationPlanRequest struct {
	Pool        json.RawMessage `json:"pool,omitempty"`
	SpeciesCode string          `json:"species_code"`
	Choices     []string        `json:"choices"`
}

// Response types

type DrawOddsResponse struct {
	Pool       string           `json:"pool"`
	PoolLabel  string           `json:"pool_label"`
	DrawYear   int              `json:"draw_year"`
	SeasonYear int              `json:"season_year"`
	Results    []DrawOddsResult `json:"results"`
}

type HuntsResponse struct {
	Hunts []HuntOption `json:"hunts"`
}

type BestHuntsResponse struct {
	Pool      string     `json:"pool"`
	PoolLabel string     `json:"pool_label"`
	DrawYear  int        `json:"draw_year"`
	Results   []BestHunt `json:"results"`
}

type ApplicationPlanResponse struct {
	Pool            string       `json:"pool"`
	PoolLabel       string       `json:"pool_label"`
	SpeciesCode     string       `json:"species_code"`
	SpeciesName     *string      `json:"species_name"`
	Choices         []PlanChoice `json:"choices"`
	LogicalOrder    bool         `json:"logical_order"`
	ApplicationOdds *float64     `json:"application_odds"`
	OneInN          *int         `json:"one_in_n"`
	Advice          *string      `json:"advice"`
}

type BagLimitsResponse struct {
	BagLimits []BagLimit `json:"bag_limits"`
}

// Domain types

// DrawOddsResult is one hunt row of the draw-odds table. Pointer fields are
// null when the hunt has no matching date, harvest or bag row.
type DrawOddsResult struct {
	HuntCode        string   `json:"hunt_code"`
	SpeciesCode     string   `json:"species_code"`
	SpeciesName     string   `json:"species_name"`
	UnitDescription *string  `json:"unit_description"`
	HuntName        *string  `json:"hunt_name"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	DrawOdds        float64  `json:"draw_odds"`
	SuccessRate     *float64 `json:"success_rate"`
	HarvestYear     *int     `json:"harvest_year"`
	BagCode         *string  `json:"bag_code"`
}

type HuntOption struct {
	HuntCode string `json:"hunt_code"`
	Label    string `json:"label"`
}

// BestHunt is a scored recommendation. Score = SuccessRate * DrawOdds.
type BestHunt struct {
	HuntCode        string  `json:"hunt_code"`
	UnitDescription *string `json:"unit_description"`
	HuntName        *string `json:"hunt_name"`
	SpeciesName     string  `json:"species_name"`
	DrawOdds        float64 `json:"draw_odds"`
	SuccessRate     float64 `json:"success_rate"`
	HarvestYear     *int    `json:"harvest_year"`
	BagCode         *string `json:"bag_code"`
	Score           float64 `json:"score"`
	Note            string  `json:"note"`
}

// PlanChoice is one ranked choice of an application plan. P is null when the
// hunt was not found for the species or has no usable counts.
type PlanChoice struct {
	ChoiceNumber int      `json:"choice_number"`
	HuntCode     string   `json:"hunt_code"`
	Applications *int64   `json:"applications"`
	Licenses     *int64   `json:"licenses"`
	P            *float64 `json:"p"`
}

type BagLimit struct {
	BagCode         string  `json:"bag_code"`
	Label           string  `json:"label"`
	PlainDefinition *string `json:"plain_definition"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
