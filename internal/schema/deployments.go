package schema

// FeatureTypes is the controlled vocabulary for deployments.featureType.
var FeatureTypes = []string{
	"roadPaved",
	"roadDirt",
	"trailHiking",
	"trailGame",
	"roadUnderpass",
	"roadOverpass",
	"roadBridge",
	"culvert",
	"burrow",
	"nestSite",
	"carcass",
	"waterSource",
	"fruitingTree",
}

// Deployments describes the deployments resource: a camera placed at a
// location for a continuous time span.
var Deployments = Schema{
	Resource: "deployments",
	Fields: []FieldSpec{
		{Name: "deploymentID", Type: FieldText, Required: true},
		{Name: "locationID", Type: FieldText},
		{Name: "locationName", Type: FieldText},
		{Name: "latitude", Type: FieldFloat, Required: true},
		{Name: "longitude", Type: FieldFloat, Required: true},
		{Name: "coordinateUncertainty", Type: FieldFloat},
		{Name: "deploymentStart", Type: FieldText, Required: true},
		{Name: "deploymentEnd", Type: FieldText, Required: true},
		{Name: "setupBy", Type: FieldText},
		{Name: "cameraID", Type: FieldText},
		{Name: "cameraModel", Type: FieldText},
		{Name: "cameraDelay", Type: FieldInt},
		{Name: "cameraHeight", Type: FieldFloat},
		{Name: "cameraDepth", Type: FieldFloat},
		{Name: "cameraTilt", Type: FieldInt},
		{Name: "cameraHeading", Type: FieldInt},
		{Name: "detectionDistance", Type: FieldFloat},
		{Name: "timestampIssues", Type: FieldBool},
		{Name: "baitUse", Type: FieldBool},
		{Name: "featureType", Type: FieldEnum, Enum: FeatureTypes},
		{Name: "habitat", Type: FieldText},
		{Name: "deploymentGroups", Type: FieldText},
		{Name: "deploymentTags", Type: FieldText},
		{Name: "deploymentComments", Type: FieldText},
	},
}
