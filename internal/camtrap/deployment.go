package camtrap

import (
	"fmt"
	"io"

	"github.com/camtraplabs/camtrapdp/internal/schema"
	"github.com/camtraplabs/camtrapdp/internal/table"
)

// FeatureType is the type of feature (if any) associated with a deployment.
// The empty value means no feature was recorded.
type FeatureType string

const (
	FeatureRoadPaved     FeatureType = "roadPaved"
	FeatureRoadDirt      FeatureType = "roadDirt"
	FeatureTrailHiking   FeatureType = "trailHiking"
	FeatureTrailGame     FeatureType = "trailGame"
	FeatureRoadUnderpass FeatureType = "roadUnderpass"
	FeatureRoadOverpass  FeatureType = "roadOverpass"
	FeatureRoadBridge    FeatureType = "roadBridge"
	FeatureCulvert       FeatureType = "culvert"
	FeatureBurrow        FeatureType = "burrow"
	FeatureNestSite      FeatureType = "nestSite"
	FeatureCarcass       FeatureType = "carcass"
	FeatureWaterSource   FeatureType = "waterSource"
	FeatureFruitingTree  FeatureType = "fruitingTree"
)

// Deployment is a period of time during which a camera trap is active at a
// specific location. Optional numeric and boolean fields are pointers; nil
// means the field is absent and serializes as an empty string. Timestamps are
// carried as-is (ISO 8601 text) without parsing.
type Deployment struct {
	DeploymentID          string
	LocationID            string
	LocationName          string
	Latitude              float64
	Longitude             float64
	CoordinateUncertainty *float64
	DeploymentStart       string
	DeploymentEnd         string
	SetupBy               string
	CameraID              string
	CameraModel           string
	CameraDelay           *int
	CameraHeight          *float64
	CameraDepth           *float64
	CameraTilt            *int
	CameraHeading         *int
	DetectionDistance     *float64
	TimestampIssues       *bool
	BaitUse               *bool
	FeatureType           FeatureType
	Habitat               string
	DeploymentGroups      string
	DeploymentTags        string
	DeploymentComments    string
}

// Deployments is an ordered sequence of deployment records.
type Deployments []Deployment

// ReadDeployments parses delimited text into deployment records.
func ReadDeployments(r io.Reader) (Deployments, error) {
	rows, err := readRows(r, schema.Deployments)
	if err != nil {
		return nil, err
	}
	out := make(Deployments, 0, len(rows))
	for i, row := range rows {
		d, err := deploymentFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("deployments: line %d: %w", i+2, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Write serializes the records as delimited text, replacing the
// destination's content.
func (ds Deployments) Write(w io.Writer) error {
	rows := make([][]string, len(ds))
	for i, d := range ds {
		rows[i] = d.row()
	}
	return writeRows(w, schema.Deployments, rows)
}

// Table converts the records to a table with one column per field.
func (ds Deployments) Table() *table.Table {
	rows := make([][]string, len(ds))
	for i, d := range ds {
		rows[i] = d.row()
	}
	return rowsToTable(schema.Deployments, rows)
}

// DeploymentsFromTable is the inverse of Table: one record per table row, in
// row order.
func DeploymentsFromTable(t *table.Table) (Deployments, error) {
	rows, err := rowsFromTable(t, schema.Deployments)
	if err != nil {
		return nil, err
	}
	out := make(Deployments, 0, len(rows))
	for i, row := range rows {
		d, err := deploymentFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("deployments: table row %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Len returns the number of records.
func (ds Deployments) Len() int { return len(ds) }

func deploymentFromRow(row []string) (Deployment, error) {
	var d Deployment
	var err error

	d.DeploymentID = row[0]
	d.LocationID = row[1]
	d.LocationName = row[2]
	if d.Latitude, err = parseFloat("latitude", row[3]); err != nil {
		return Deployment{}, err
	}
	if d.Longitude, err = parseFloat("longitude", row[4]); err != nil {
		return Deployment{}, err
	}
	if d.CoordinateUncertainty, err = parseOptFloat("coordinateUncertainty", row[5]); err != nil {
		return Deployment{}, err
	}
	d.DeploymentStart = row[6]
	d.DeploymentEnd = row[7]
	d.SetupBy = row[8]
	d.CameraID = row[9]
	d.CameraModel = row[10]
	if d.CameraDelay, err = parseOptInt("cameraDelay", row[11]); err != nil {
		return Deployment{}, err
	}
	if d.CameraHeight, err = parseOptFloat("cameraHeight", row[12]); err != nil {
		return Deployment{}, err
	}
	if d.CameraDepth, err = parseOptFloat("cameraDepth", row[13]); err != nil {
		return Deployment{}, err
	}
	if d.CameraTilt, err = parseOptInt("cameraTilt", row[14]); err != nil {
		return Deployment{}, err
	}
	if d.CameraHeading, err = parseOptInt("cameraHeading", row[15]); err != nil {
		return Deployment{}, err
	}
	if d.DetectionDistance, err = parseOptFloat("detectionDistance", row[16]); err != nil {
		return Deployment{}, err
	}
	if d.TimestampIssues, err = parseOptBool("timestampIssues", row[17]); err != nil {
		return Deployment{}, err
	}
	if d.BaitUse, err = parseOptBool("baitUse", row[18]); err != nil {
		return Deployment{}, err
	}
	ft, err := parseEnum("featureType", row[19], schema.FeatureTypes)
	if err != nil {
		return Deployment{}, err
	}
	d.FeatureType = FeatureType(ft)
	d.Habitat = row[20]
	d.DeploymentGroups = row[21]
	d.DeploymentTags = row[22]
	d.DeploymentComments = row[23]

	return d, nil
}

func (d Deployment) row() []string {
	return []string{
		d.DeploymentID,
		d.LocationID,
		d.LocationName,
		formatFloat(d.Latitude),
		formatFloat(d.Longitude),
		formatOptFloat(d.CoordinateUncertainty),
		d.DeploymentStart,
		d.DeploymentEnd,
		d.SetupBy,
		d.CameraID,
		d.CameraModel,
		formatOptInt(d.CameraDelay),
		formatOptFloat(d.CameraHeight),
		formatOptFloat(d.CameraDepth),
		formatOptInt(d.CameraTilt),
		formatOptInt(d.CameraHeading),
		formatOptFloat(d.DetectionDistance),
		formatOptBool(d.TimestampIssues),
		formatOptBool(d.BaitUse),
		string(d.FeatureType),
		d.Habitat,
		d.DeploymentGroups,
		d.DeploymentTags,
		d.DeploymentComments,
	}
}
