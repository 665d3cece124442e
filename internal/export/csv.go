package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"fairlens/internal/models"
)

// Header is the review CSV schema, matching the Review attribute names.
var Header = []string{
	"employee_id", "role", "gender",
	"kpi_rating", "competency_rating", "initiative_rating", "overall_rating",
	"comment",
}

// WriteReviews serializes the reviews as CSV with the Header row. Standard
// CSV quoting handles embedded commas, quotes and newlines in comments.
func WriteReviews(w io.Writer, reviews []models.Review) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range reviews {
		record := []string{
			r.EmployeeID, r.Role, r.Gender,
			strconv.Itoa(r.KPIRating),
			strconv.Itoa(r.CompetencyRating),
			strconv.Itoa(r.InitiativeRating),
			strconv.Itoa(r.OverallRating),
			r.Comment,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write review %s: %w", r.EmployeeID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseReviews reads review CSV in the WriteReviews format back into
// records. The header must match the expected schema. Rows with a blank
// employee id or with ratings that are not integers in [1,5] are skipped
// rather than failing the whole import; the skipped count is returned
// alongside the parsed records.
func ParseReviews(r io.Reader) ([]models.Review, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	if !headerMatches(header) {
		return nil, 0, fmt.Errorf("unexpected header %v, want %v", header, Header)
	}

	var reviews []models.Review
	skipped := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		review, ok := parseRecord(record)
		if !ok {
			skipped++
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, skipped, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, h := range header {
		if h != Header[i] {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (models.Review, bool) {
	if len(record) != len(Header) || record[0] == "" {
		return models.Review{}, false
	}
	ratings := make([]int, 4)
	for i, raw := range record[3:7] {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 5 {
			return models.Review{}, false
		}
		ratings[i] = v
	}
	return models.Review{
		EmployeeID:       record[0],
		Role:             record[1],
		Gender:           record[2],
		KPIRating:        ratings[0],
		CompetencyRating: ratings[1],
		InitiativeRating: ratings[2],
		OverallRating:    ratings[3],
		Comment:          record[7],
	}, true
}
