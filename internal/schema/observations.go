package schema

// Controlled vocabularies for the observations resource.
var (
	ObservationLevels = []string{"event", "media"}

	ObservationTypes = []string{
		"animal",
		"human",
		"vehicle",
		"blank",
		"unknown",
		"unclassified",
	}

	CameraSetupTypes = []string{"setup", "calibration"}

	LifeStages = []string{"adult", "subadult", "juvenile"}

	ClassificationMethods = []string{"human", "machine"}
)

// Observations describes the observations resource: a classification tied to
// a media file or to an event spanning several media files.
//
// sex is an open text field: the upstream vocabulary declares no values for
// it.
var Observations = Schema{
	Resource: "observations",
	Fields: []FieldSpec{
		{Name: "observationID", Type: FieldText, Required: true},
		{Name: "deploymentID", Type: FieldText, Required: true},
		{Name: "mediaID", Type: FieldText},
		{Name: "eventID", Type: FieldText},
		{Name: "eventStart", Type: FieldText, Required: true},
		{Name: "eventEnd", Type: FieldText, Required: true},
		{Name: "observationLevel", Type: FieldEnum, Required: true, Enum: ObservationLevels},
		{Name: "observationType", Type: FieldEnum, Required: true, Enum: ObservationTypes},
		{Name: "cameraSetupType", Type: FieldEnum, Enum: CameraSetupTypes},
		{Name: "scientificName", Type: FieldText},
		{Name: "count", Type: FieldInt},
		{Name: "lifeStage", Type: FieldEnum, Enum: LifeStages},
		{Name: "sex", Type: FieldText},
		{Name: "behavior", Type: FieldText},
		{Name: "individualID", Type: FieldText},
		{Name: "individualPositionRadius", Type: FieldFloat},
		{Name: "individualPositionAngle", Type: FieldFloat},
		{Name: "individualSpeed", Type: FieldFloat},
		{Name: "bboxX", Type: FieldFloat},
		{Name: "bboxY", Type: FieldFloat},
		{Name: "bboxWidth", Type: FieldFloat},
		{Name: "bboxHeight", Type: FieldFloat},
		{Name: "classificationMethod", Type: FieldEnum, Enum: ClassificationMethods},
		{Name: "classifiedBy", Type: FieldText},
		{Name: "classificationTimestamp", Type: FieldText},
		{Name: "classificationProbability", Type: FieldFloat},
		{Name: "observationTags", Type: FieldText},
		{Name: "observationComments", Type: FieldText},
	},
}
