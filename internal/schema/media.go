package schema

// CaptureMethods is the controlled vocabulary for media.captureMethod.
var CaptureMethods = []string{
	"activityDetection",
	"timeLapse",
}

// Media describes the media resource: one image or video file captured
// during a deployment. exifData is carried as an opaque string (serialized
// JSON in the text form).
var Media = Schema{
	Resource: "media",
	Fields: []FieldSpec{
		{Name: "mediaID", Type: FieldText, Required: true},
		{Name: "deploymentID", Type: FieldText, Required: true},
		{Name: "captureMethod", Type: FieldEnum, Enum: CaptureMethods},
		{Name: "timestamp", Type: FieldText, Required: true},
		{Name: "filePath", Type: FieldText, Required: true},
		{Name: "filePublic", Type: FieldBool, Required: true},
		{Name: "fileName", Type: FieldText},
		{Name: "fileMediatype", Type: FieldText, Required: true},
		{Name: "exifData", Type: FieldText},
		{Name: "favorite", Type: FieldBool},
		{Name: "mediaComments", Type: FieldText},
	},
}
