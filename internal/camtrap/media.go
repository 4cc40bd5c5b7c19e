package camtrap

import (
	"fmt"
	"io"

	"github.com/camtraplabs/camtrapdp/internal/schema"
	"github.com/camtraplabs/camtrapdp/internal/table"
)

// CaptureMethod is the method used to capture a media file.
type CaptureMethod string

const (
	CaptureActivityDetection CaptureMethod = "activityDetection"
	CaptureTimeLapse         CaptureMethod = "timeLapse"
)

// Media is a single image or video file captured by a camera trap. ExifData
// is carried as an opaque string (serialized JSON in the text form).
type Media struct {
	MediaID       string
	DeploymentID  string
	CaptureMethod CaptureMethod
	Timestamp     string
	FilePath      string
	FilePublic    bool
	FileName      string
	FileMediatype string
	ExifData      string
	Favorite      *bool
	MediaComments string
}

// MediaSet is an ordered sequence of media records.
type MediaSet []Media

// ReadMedia parses delimited text into media records.
func ReadMedia(r io.Reader) (MediaSet, error) {
	rows, err := readRows(r, schema.Media)
	if err != nil {
		return nil, err
	}
	out := make(MediaSet, 0, len(rows))
	for i, row := range rows {
		m, err := mediaFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("media: line %d: %w", i+2, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Write serializes the records as delimited text.
func (ms MediaSet) Write(w io.Writer) error {
	rows := make([][]string, len(ms))
	for i, m := range ms {
		rows[i] = m.row()
	}
	return writeRows(w, schema.Media, rows)
}

// Table converts the records to a table with one column per field.
func (ms MediaSet) Table() *table.Table {
	rows := make([][]string, len(ms))
	for i, m := range ms {
		rows[i] = m.row()
	}
	return rowsToTable(schema.Media, rows)
}

// MediaFromTable is the inverse of Table: one record per table row, in row
// order.
func MediaFromTable(t *table.Table) (MediaSet, error) {
	rows, err := rowsFromTable(t, schema.Media)
	if err != nil {
		return nil, err
	}
	out := make(MediaSet, 0, len(rows))
	for i, row := range rows {
		m, err := mediaFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("media: table row %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Len returns the number of records.
func (ms MediaSet) Len() int { return len(ms) }

func mediaFromRow(row []string) (Media, error) {
	var m Media
	var err error

	m.MediaID = row[0]
	m.DeploymentID = row[1]
	cm, err := parseEnum("captureMethod", row[2], schema.CaptureMethods)
	if err != nil {
		return Media{}, err
	}
	m.CaptureMethod = CaptureMethod(cm)
	m.Timestamp = row[3]
	m.FilePath = row[4]
	if m.FilePublic, err = parseBool("filePublic", row[5]); err != nil {
		return Media{}, err
	}
	m.FileName = row[6]
	m.FileMediatype = row[7]
	m.ExifData = row[8]
	if m.Favorite, err = parseOptBool("favorite", row[9]); err != nil {
		return Media{}, err
	}
	m.MediaComments = row[10]

	return m, nil
}

func (m Media) row() []string {
	return []string{
		m.MediaID,
		m.DeploymentID,
		string(m.CaptureMethod),
		m.Timestamp,
		m.FilePath,
		formatBool(m.FilePublic),
		m.FileName,
		m.FileMediatype,
		m.ExifData,
		formatOptBool(m.Favorite),
		m.MediaComments,
	}
}
