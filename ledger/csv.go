package ledger

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "run_id", "from", "to", "requested", "paid", "reason", "completed", "reversed", "simulation"}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) Record(t Transaction) error {
	err := j.w.Write([]string{
		t.ID,
		t.RunID,
		strconv.Itoa(int(t.From)),
		strconv.Itoa(int(t.To)),
		strconv.Itoa(t.Requested),
		strconv.Itoa(t.Paid),
		t.Reason,
		strconv.FormatBool(t.Completed),
		strconv.FormatBool(t.Reversed),
		strconv.FormatBool(t.Simulation),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}
