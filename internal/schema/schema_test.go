package schema

import (
	"reflect"
	"testing"
)

func TestSchemaShapes(t *testing.T) {
	tests := []struct {
		schema     Schema
		wantName   string
		wantFields int
		wantFirst  string
		wantLast   string
	}{
		{Deployments, "deployments", 24, "deploymentID", "deploymentComments"},
		{Media, "media", 11, "mediaID", "mediaComments"},
		{Observations, "observations", 28, "observationID", "observationComments"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.schema.Resource != tt.wantName {
				t.Errorf("Resource = %q, want %q", tt.schema.Resource, tt.wantName)
			}
			names := tt.schema.Names()
			if len(names) != tt.wantFields {
				t.Fatalf("len(Names()) = %d, want %d", len(names), tt.wantFields)
			}
			if names[0] != tt.wantFirst {
				t.Errorf("Names()[0] = %q, want %q", names[0], tt.wantFirst)
			}
			if names[len(names)-1] != tt.wantLast {
				t.Errorf("last name = %q, want %q", names[len(names)-1], tt.wantLast)
			}

			// Field names are unique: the index must cover every position.
			idx := tt.schema.Index()
			if len(idx) != tt.wantFields {
				t.Errorf("len(Index()) = %d, want %d", len(idx), tt.wantFields)
			}
			for i, name := range names {
				if idx[name] != i {
					t.Errorf("Index()[%q] = %d, want %d", name, idx[name], i)
				}
			}
		})
	}
}

func TestDeploymentsFieldSpecs(t *testing.T) {
	tests := []struct {
		name     string
		typ      FieldType
		required bool
	}{
		{name: "deploymentID", typ: FieldText, required: true},
		{name: "latitude", typ: FieldFloat, required: true},
		{name: "longitude", typ: FieldFloat, required: true},
		{name: "coordinateUncertainty", typ: FieldFloat},
		{name: "cameraDelay", typ: FieldInt},
		{name: "cameraHeading", typ: FieldInt},
		{name: "timestampIssues", typ: FieldBool},
		{name: "baitUse", typ: FieldBool},
		{name: "featureType", typ: FieldEnum},
		{name: "habitat", typ: FieldText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Deployments.Field(tt.name)
			if !ok {
				t.Fatalf("Field(%q) not found", tt.name)
			}
			if f.Type != tt.typ {
				t.Errorf("Type = %v, want %v", f.Type, tt.typ)
			}
			if f.Required != tt.required {
				t.Errorf("Required = %v, want %v", f.Required, tt.required)
			}
		})
	}

	if _, ok := Deployments.Field("habitatType"); ok {
		t.Error("Field(habitatType) found; the column is named habitat")
	}
}

func TestVocabularies(t *testing.T) {
	tests := []struct {
		name  string
		vocab []string
		want  int
	}{
		{name: "featureType", vocab: FeatureTypes, want: 13},
		{name: "captureMethod", vocab: CaptureMethods, want: 2},
		{name: "observationLevel", vocab: ObservationLevels, want: 2},
		{name: "observationType", vocab: ObservationTypes, want: 6},
		{name: "cameraSetupType", vocab: CameraSetupTypes, want: 2},
		{name: "lifeStage", vocab: LifeStages, want: 3},
		{name: "classificationMethod", vocab: ClassificationMethods, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.vocab) != tt.want {
				t.Errorf("len = %d, want %d", len(tt.vocab), tt.want)
			}
		})
	}

	want := []string{"animal", "human", "vehicle", "blank", "unknown", "unclassified"}
	if !reflect.DeepEqual(ObservationTypes, want) {
		t.Errorf("ObservationTypes = %v, want %v", ObservationTypes, want)
	}
}

// Sex has an empty upstream vocabulary, so it is declared as open text
// rather than an enum.
func TestObservationSexIsOpenText(t *testing.T) {
	f, ok := Observations.Field("sex")
	if !ok {
		t.Fatal("Field(sex) not found")
	}
	if f.Type != FieldText {
		t.Errorf("sex Type = %v, want FieldText", f.Type)
	}
	if len(f.Enum) != 0 {
		t.Errorf("sex Enum = %v, want empty", f.Enum)
	}
}

func TestRequiredFields(t *testing.T) {
	wantRequired := map[string][]string{
		"deployments":  {"deploymentID", "latitude", "longitude", "deploymentStart", "deploymentEnd"},
		"media":        {"mediaID", "deploymentID", "timestamp", "filePath", "filePublic", "fileMediatype"},
		"observations": {"observationID", "deploymentID", "eventStart", "eventEnd", "observationLevel", "observationType"},
	}

	for _, s := range []Schema{Deployments, Media, Observations} {
		var got []string
		for _, f := range s.Fields {
			if f.Required {
				got = append(got, f.Name)
			}
		}
		if !reflect.DeepEqual(got, wantRequired[s.Resource]) {
			t.Errorf("%s required fields = %v, want %v", s.Resource, got, wantRequired[s.Resource])
		}
	}
}

func TestFieldTypeString(t *testing.T) {
	tests := []struct {
		typ  FieldType
		want string
	}{
		{FieldText, "text"},
		{FieldEnum, "enum"},
		{FieldFloat, "float"},
		{FieldInt, "integer"},
		{FieldBool, "boolean"},
		{FieldType(99), "value"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("FieldType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
