package camtrap

import (
	"fmt"
	"io"

	"github.com/camtraplabs/camtrapdp/internal/schema"
	"github.com/camtraplabs/camtrapdp/internal/table"
)

// ObservationLevel distinguishes event-based from media-based observations.
type ObservationLevel string

const (
	LevelEvent ObservationLevel = "event"
	LevelMedia ObservationLevel = "media"
)

// ObservationType is the classification category of an observation.
type ObservationType string

const (
	TypeAnimal       ObservationType = "animal"
	TypeHuman        ObservationType = "human"
	TypeVehicle      ObservationType = "vehicle"
	TypeBlank        ObservationType = "blank"
	TypeUnknown      ObservationType = "unknown"
	TypeUnclassified ObservationType = "unclassified"
)

// CameraSetupType marks observations made during camera setup or calibration.
type CameraSetupType string

const (
	SetupSetup       CameraSetupType = "setup"
	SetupCalibration CameraSetupType = "calibration"
)

// LifeStage is the age class of the observed individual(s).
type LifeStage string

const (
	StageAdult    LifeStage = "adult"
	StageSubadult LifeStage = "subadult"
	StageJuvenile LifeStage = "juvenile"
)

// ClassificationMethod is how an observation was (most recently) classified.
type ClassificationMethod string

const (
	ClassifiedByHuman   ClassificationMethod = "human"
	ClassifiedByMachine ClassificationMethod = "machine"
)

// Observation is a classification of an individual or group of individuals
// in a media file or event. Sex is an open text field: its upstream
// vocabulary declares no values.
type Observation struct {
	ObservationID             string
	DeploymentID              string
	MediaID                   string
	EventID                   string
	EventStart                string
	EventEnd                  string
	ObservationLevel          ObservationLevel
	ObservationType           ObservationType
	CameraSetupType           CameraSetupType
	ScientificName            string
	Count                     *int
	LifeStage                 LifeStage
	Sex                       string
	Behavior                  string
	IndividualID              string
	IndividualPositionRadius  *float64
	IndividualPositionAngle   *float64
	IndividualSpeed           *float64
	BboxX                     *float64
	BboxY                     *float64
	BboxWidth                 *float64
	BboxHeight                *float64
	ClassificationMethod      ClassificationMethod
	ClassifiedBy              string
	ClassificationTimestamp   string
	ClassificationProbability *float64
	ObservationTags           string
	ObservationComments       string
}

// Observations is an ordered sequence of observation records.
type Observations []Observation

// ReadObservations parses delimited text into observation records.
func ReadObservations(r io.Reader) (Observations, error) {
	rows, err := readRows(r, schema.Observations)
	if err != nil {
		return nil, err
	}
	out := make(Observations, 0, len(rows))
	for i, row := range rows {
		o, err := observationFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("observations: line %d: %w", i+2, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Write serializes the records as delimited text.
func (os Observations) Write(w io.Writer) error {
	rows := make([][]string, len(os))
	for i, o := range os {
		rows[i] = o.row()
	}
	return writeRows(w, schema.Observations, rows)
}

// Table converts the records to a table with one column per field.
func (os Observations) Table() *table.Table {
	rows := make([][]string, len(os))
	for i, o := range os {
		rows[i] = o.row()
	}
	return rowsToTable(schema.Observations, rows)
}

// ObservationsFromTable is the inverse of Table: one record per table row,
// in row order.
func ObservationsFromTable(t *table.Table) (Observations, error) {
	rows, err := rowsFromTable(t, schema.Observations)
	if err != nil {
		return nil, err
	}
	out := make(Observations, 0, len(rows))
	for i, row := range rows {
		o, err := observationFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("observations: table row %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Len returns the number of records.
func (os Observations) Len() int { return len(os) }

func observationFromRow(row []string) (Observation, error) {
	var o Observation
	var err error

	o.ObservationID = row[0]
	o.DeploymentID = row[1]
	o.MediaID = row[2]
	o.EventID = row[3]
	o.EventStart = row[4]
	o.EventEnd = row[5]
	level, err := parseReqEnum("observationLevel", row[6], schema.ObservationLevels)
	if err != nil {
		return Observation{}, err
	}
	o.ObservationLevel = ObservationLevel(level)
	typ, err := parseReqEnum("observationType", row[7], schema.ObservationTypes)
	if err != nil {
		return Observation{}, err
	}
	o.ObservationType = ObservationType(typ)
	setup, err := parseEnum("cameraSetupType", row[8], schema.CameraSetupTypes)
	if err != nil {
		return Observation{}, err
	}
	o.CameraSetupType = CameraSetupType(setup)
	o.ScientificName = row[9]
	if o.Count, err = parseOptInt("count", row[10]); err != nil {
		return Observation{}, err
	}
	stage, err := parseEnum("lifeStage", row[11], schema.LifeStages)
	if err != nil {
		return Observation{}, err
	}
	o.LifeStage = LifeStage(stage)
	o.Sex = row[12]
	o.Behavior = row[13]
	o.IndividualID = row[14]
	if o.IndividualPositionRadius, err = parseOptFloat("individualPositionRadius", row[15]); err != nil {
		return Observation{}, err
	}
	if o.IndividualPositionAngle, err = parseOptFloat("individualPositionAngle", row[16]); err != nil {
		return Observation{}, err
	}
	if o.IndividualSpeed, err = parseOptFloat("individualSpeed", row[17]); err != nil {
		return Observation{}, err
	}
	if o.BboxX, err = parseOptFloat("bboxX", row[18]); err != nil {
		return Observation{}, err
	}
	if o.BboxY, err = parseOptFloat("bboxY", row[19]); err != nil {
		return Observation{}, err
	}
	if o.BboxWidth, err = parseOptFloat("bboxWidth", row[20]); err != nil {
		return Observation{}, err
	}
	if o.BboxHeight, err = parseOptFloat("bboxHeight", row[21]); err != nil {
		return Observation{}, err
	}
	method, err := parseEnum("classificationMethod", row[22], schema.ClassificationMethods)
	if err != nil {
		return Observation{}, err
	}
	o.ClassificationMethod = ClassificationMethod(method)
	o.ClassifiedBy = row[23]
	o.ClassificationTimestamp = row[24]
	if o.ClassificationProbability, err = parseOptFloat("classificationProbability", row[25]); err != nil {
		return Observation{}, err
	}
	o.ObservationTags = row[26]
	o.ObservationComments = row[27]

	return o, nil
}

func (o Observation) row() []string {
	return []string{
		o.ObservationID,
		o.DeploymentID,
		o.MediaID,
		o.EventID,
		o.EventStart,
		o.EventEnd,
		string(o.ObservationLevel),
		string(o.ObservationType),
		string(o.CameraSetupType),
		o.ScientificName,
		formatOptInt(o.Count),
		string(o.LifeStage),
		o.Sex,
		o.Behavior,
		o.IndividualID,
		formatOptFloat(o.IndividualPositionRadius),
		formatOptFloat(o.IndividualPositionAngle),
		formatOptFloat(o.IndividualSpeed),
		formatOptFloat(o.BboxX),
		formatOptFloat(o.BboxY),
		formatOptFloat(o.BboxWidth),
		formatOptFloat(o.BboxHeight),
		string(o.ClassificationMethod),
		o.ClassifiedBy,
		o.ClassificationTimestamp,
		formatOptFloat(o.ClassificationProbability),
		o.ObservationTags,
		o.ObservationComments,
	}
}
