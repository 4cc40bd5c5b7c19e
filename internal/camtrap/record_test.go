package camtrap

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/camtraplabs/camtrapdp/internal/table"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func bptr(b bool) *bool       { return &b }

func TestDeploymentFields(t *testing.T) {
	ds, err := ReadDeployments(bytes.NewReader(readFixture(t, "deployments.csv")))
	if err != nil {
		t.Fatalf("ReadDeployments() error = %v", err)
	}

	full := ds[0]
	want := Deployment{
		DeploymentID:          "dep001",
		LocationID:            "loc01",
		LocationName:          "Forest edge",
		Latitude:              52.70442,
		Longitude:             4.013,
		CoordinateUncertainty: fptr(10),
		DeploymentStart:       "2020-05-30T02:57:37+02:00",
		DeploymentEnd:         "2020-07-01T09:41:41+02:00",
		SetupBy:               "Jane Doe",
		CameraID:              "cam01",
		CameraModel:           "Reconyx-PC800",
		CameraDelay:           iptr(0),
		CameraHeight:          fptr(1.3),
		CameraTilt:            iptr(-10),
		CameraHeading:         iptr(225),
		DetectionDistance:     fptr(9.5),
		TimestampIssues:       bptr(false),
		BaitUse:               bptr(true),
		FeatureType:           FeatureCulvert,
		Habitat:               "forest",
		DeploymentGroups:      "season:spring",
		DeploymentTags:        "tag1|tag2",
		DeploymentComments:    "first deployment",
	}
	if !reflect.DeepEqual(full, want) {
		t.Errorf("ds[0] = %+v, want %+v", full, want)
	}

	// Row with every optional field empty: pointers are nil, text fields are
	// empty strings.
	sparse := ds[1]
	if sparse.DeploymentID != "dep002" {
		t.Fatalf("ds[1].DeploymentID = %q, want %q", sparse.DeploymentID, "dep002")
	}
	if sparse.CoordinateUncertainty != nil {
		t.Errorf("CoordinateUncertainty = %v, want nil", *sparse.CoordinateUncertainty)
	}
	if sparse.CameraDelay != nil || sparse.CameraTilt != nil || sparse.CameraHeading != nil {
		t.Error("empty integer fields not nil")
	}
	if sparse.TimestampIssues != nil || sparse.BaitUse != nil {
		t.Error("empty boolean fields not nil")
	}
	if sparse.FeatureType != "" || sparse.Habitat != "" || sparse.SetupBy != "" {
		t.Error("empty text fields not empty strings")
	}
}

func TestObservationFields(t *testing.T) {
	obs, err := ReadObservations(bytes.NewReader(readFixture(t, "observations.csv")))
	if err != nil {
		t.Fatalf("ReadObservations() error = %v", err)
	}

	o := obs[1]
	if o.ObservationLevel != LevelMedia {
		t.Errorf("ObservationLevel = %q, want %q", o.ObservationLevel, LevelMedia)
	}
	if o.ObservationType != TypeAnimal {
		t.Errorf("ObservationType = %q, want %q", o.ObservationType, TypeAnimal)
	}
	if o.ScientificName != "Vulpes vulpes" {
		t.Errorf("ScientificName = %q, want %q", o.ScientificName, "Vulpes vulpes")
	}
	if o.Count == nil || *o.Count != 1 {
		t.Errorf("Count = %v, want 1", o.Count)
	}
	if o.BboxX == nil || *o.BboxX != 0.1 {
		t.Errorf("BboxX = %v, want 0.1", o.BboxX)
	}
	if o.ClassificationProbability == nil || *o.ClassificationProbability != 0.97 {
		t.Errorf("ClassificationProbability = %v, want 0.97", o.ClassificationProbability)
	}
	if o.ClassificationMethod != ClassifiedByMachine {
		t.Errorf("ClassificationMethod = %q, want %q", o.ClassificationMethod, ClassifiedByMachine)
	}

	// Sex has no vocabulary: any text is carried through unchanged.
	if obs[0].Sex != "female" {
		t.Errorf("obs[0].Sex = %q, want %q", obs[0].Sex, "female")
	}
}

func TestRequiredEnumEmptyRejected(t *testing.T) {
	obs, err := ReadObservations(bytes.NewReader(readFixture(t, "observations.csv")))
	if err != nil {
		t.Fatalf("ReadObservations() error = %v", err)
	}

	obs[0].ObservationLevel = ""
	var buf bytes.Buffer
	if err := obs.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	_, err = ReadObservations(bytes.NewReader(buf.Bytes()))
	if err == nil {
		t.Fatal("ReadObservations() error = nil, want error for empty observationLevel")
	}
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *ValueError", err)
	}
	if ve.Field != "observationLevel" {
		t.Errorf("ValueError.Field = %q, want %q", ve.Field, "observationLevel")
	}
}

func TestTableRoundTrip(t *testing.T) {
	t.Run("deployments", func(t *testing.T) {
		ds, err := ReadDeployments(bytes.NewReader(readFixture(t, "deployments.csv")))
		if err != nil {
			t.Fatalf("ReadDeployments() error = %v", err)
		}

		tbl := ds.Table()
		if got := tbl.NumRows(); got != len(ds) {
			t.Fatalf("NumRows() = %d, want %d", got, len(ds))
		}
		if got := len(tbl.Columns()); got != 24 {
			t.Fatalf("len(Columns()) = %d, want 24", got)
		}

		back, err := DeploymentsFromTable(tbl)
		if err != nil {
			t.Fatalf("DeploymentsFromTable() error = %v", err)
		}
		if !reflect.DeepEqual(back, ds) {
			t.Error("DeploymentsFromTable(Table()) differs from original records")
		}
	})

	t.Run("media", func(t *testing.T) {
		ms, err := ReadMedia(bytes.NewReader(readFixture(t, "media.csv")))
		if err != nil {
			t.Fatalf("ReadMedia() error = %v", err)
		}

		back, err := MediaFromTable(ms.Table())
		if err != nil {
			t.Fatalf("MediaFromTable() error = %v", err)
		}
		if !reflect.DeepEqual(back, ms) {
			t.Error("MediaFromTable(Table()) differs from original records")
		}
	})

	t.Run("observations", func(t *testing.T) {
		obs, err := ReadObservations(bytes.NewReader(readFixture(t, "observations.csv")))
		if err != nil {
			t.Fatalf("ReadObservations() error = %v", err)
		}

		back, err := ObservationsFromTable(obs.Table())
		if err != nil {
			t.Fatalf("ObservationsFromTable() error = %v", err)
		}
		if !reflect.DeepEqual(back, obs) {
			t.Error("ObservationsFromTable(Table()) differs from original records")
		}
	})
}

func TestTableCellAccess(t *testing.T) {
	ds, err := ReadDeployments(bytes.NewReader(readFixture(t, "deployments.csv")))
	if err != nil {
		t.Fatalf("ReadDeployments() error = %v", err)
	}

	tbl := ds.Table()
	got, ok := tbl.Cell(0, "locationName")
	if !ok || got != "Forest edge" {
		t.Errorf("Cell(0, locationName) = %q, %v, want %q, true", got, ok, "Forest edge")
	}

	// Absent optional values surface as empty strings, same as on the wire.
	got, ok = tbl.Cell(1, "cameraHeight")
	if !ok || got != "" {
		t.Errorf("Cell(1, cameraHeight) = %q, %v, want empty, true", got, ok)
	}

	ids, ok := tbl.Column("deploymentID")
	if !ok {
		t.Fatal("Column(deploymentID) not found")
	}
	want := []string{"dep001", "dep002", "dep003", "dep004"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Column(deploymentID) = %v, want %v", ids, want)
	}
}

func TestFromTableMissingRequiredColumn(t *testing.T) {
	tbl := table.New("mediaID", "deploymentID", "timestamp")

	_, err := MediaFromTable(tbl)
	if err == nil {
		t.Fatal("MediaFromTable() error = nil, want *FormatError")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *FormatError", err)
	}
	if fe.Message != `missing required column "filePath"` {
		t.Errorf("FormatError.Message = %q, want missing filePath", fe.Message)
	}
}

func TestFromTableMissingOptionalColumnReadsEmpty(t *testing.T) {
	tbl := table.New("mediaID", "deploymentID", "timestamp", "filePath", "filePublic", "fileMediatype")
	if err := tbl.AppendRow("med001", "dep001", "2020-06-01T00:00:00Z", "media/IMG.JPG", "true", "image/jpeg"); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	ms, err := MediaFromTable(tbl)
	if err != nil {
		t.Fatalf("MediaFromTable() error = %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("len(ms) = %d, want 1", len(ms))
	}
	if ms[0].CaptureMethod != "" || ms[0].ExifData != "" || ms[0].Favorite != nil {
		t.Errorf("missing optional columns not absent: %+v", ms[0])
	}
}

// TestLargeSetRoundTrip exercises the serialization with record counts in the
// range of a real monitoring season.
func TestLargeSetRoundTrip(t *testing.T) {
	ms := make(MediaSet, 423)
	for i := range ms {
		ms[i] = Media{
			MediaID:       fmt.Sprintf("med%04d", i),
			DeploymentID:  fmt.Sprintf("dep%02d", i%7),
			CaptureMethod: CaptureActivityDetection,
			Timestamp:     fmt.Sprintf("2020-06-%02dT%02d:00:00Z", i%28+1, i%24),
			FilePath:      fmt.Sprintf("media/IMG%04d.JPG", i),
			FilePublic:    i%3 != 0,
			FileMediatype: "image/jpeg",
		}
	}

	var buf bytes.Buffer
	if err := ms.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	first := buf.String()

	back, err := ReadMedia(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadMedia() error = %v", err)
	}
	if len(back) != 423 {
		t.Fatalf("len(back) = %d, want 423", len(back))
	}
	if !reflect.DeepEqual(back, ms) {
		t.Error("records differ after round trip")
	}

	buf.Reset()
	if err := back.Write(&buf); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}
	if buf.String() != first {
		t.Error("second serialization differs from first")
	}

	obs := make(Observations, 549)
	for i := range obs {
		obs[i] = Observation{
			ObservationID:    fmt.Sprintf("obs%04d", i),
			DeploymentID:     fmt.Sprintf("dep%02d", i%7),
			EventStart:       "2020-06-01T00:00:00Z",
			EventEnd:         "2020-06-01T00:01:00Z",
			ObservationLevel: LevelEvent,
			ObservationType:  TypeAnimal,
			ScientificName:   "Vulpes vulpes",
			Count:            iptr(i%4 + 1),
		}
	}

	buf.Reset()
	if err := obs.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	backObs, err := ReadObservations(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadObservations() error = %v", err)
	}
	if len(backObs) != 549 {
		t.Fatalf("len(backObs) = %d, want 549", len(backObs))
	}
	if !reflect.DeepEqual(backObs, obs) {
		t.Error("observation records differ after round trip")
	}
}
