package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	CSVFilename  = "emotion_analysis.csv"
	JSONFilename = "emotion_analysis.json"
)

var ErrLengthMismatch = errors.New("labels and scores differ in length")

// Row is one exported (emotion, probability) pair.
type Row struct {
	Emotion     string  `json:"emotion"`
	Probability float64 `json:"probability"`
}

// Rows pairs labels with scores in the given order.
func Rows(labels []string, scores []float64) ([]Row, error) {
	if len(labels) != len(scores) {
		return nil, fmt.Errorf("%w: %d labels, %d scores", ErrLengthMismatch, len(labels), len(scores))
	}
	rows := make([]Row, len(labels))
	for i := range labels {
		rows[i] = Row{Emotion: labels[i], Probability: scores[i]}
	}
	return rows, nil
}

// WriteCSV writes a header and one row per pair.
func WriteCSV(w io.Writer, labels []string, scores []float64) error {
	rows, err := Rows(labels, scores)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Emotions", "Probability"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Emotion, strconv.FormatFloat(r.Probability, 'f', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the pairs as an indented JSON array.
func WriteJSON(w io.Writer, labels []string, scores []float64) error {
	rows, err := Rows(labels, scores)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
