package camtrap

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestResources(t *testing.T) {
	var names []string
	for _, res := range Resources() {
		names = append(names, res.Name)
	}
	want := []string{"deployments", "media", "observations"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("resource names = %v, want %v", names, want)
	}
}

func TestLookup(t *testing.T) {
	res, ok := Lookup("observations")
	if !ok {
		t.Fatal("Lookup(observations) not found")
	}
	if res.Name != "observations" || len(res.Schema.Fields) != 28 {
		t.Errorf("Lookup(observations) = {%q, %d fields}, want {observations, 28 fields}",
			res.Name, len(res.Schema.Fields))
	}

	if _, ok := Lookup("events"); ok {
		t.Error("Lookup(events) found, want not found")
	}
	if _, ok := Lookup("Deployments"); ok {
		t.Error("Lookup(Deployments) found, resource names are case-sensitive")
	}
}

func TestNormalize(t *testing.T) {
	// Shuffled columns, CRLF endings and titlecase booleans all normalize to
	// the canonical form.
	in := "filePublic,mediaID,deploymentID,captureMethod,timestamp,filePath,fileName,fileMediatype,exifData,favorite,mediaComments\r\n" +
		"True,med001,dep001,timeLapse,2020-06-01T04:12:00Z,media/IMG.JPG,IMG.JPG,image/jpeg,,False,\r\n"

	want := "mediaID,deploymentID,captureMethod,timestamp,filePath,filePublic,fileName,fileMediatype,exifData,favorite,mediaComments\n" +
		"med001,dep001,timeLapse,2020-06-01T04:12:00Z,media/IMG.JPG,true,IMG.JPG,image/jpeg,,false,\n"

	res, _ := Lookup("media")
	var buf bytes.Buffer
	if err := res.Normalize(strings.NewReader(in), &buf); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("Normalize() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	data := readFixture(t, "observations.csv")
	res, _ := Lookup("observations")

	var buf bytes.Buffer
	if err := res.Normalize(bytes.NewReader(data), &buf); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Error("normalizing canonical input changed it")
	}
}

func TestNormalizeWritesNothingOnError(t *testing.T) {
	res, _ := Lookup("deployments")
	var buf bytes.Buffer
	err := res.Normalize(strings.NewReader("bogusColumn\nx\n"), &buf)
	if err == nil {
		t.Fatal("Normalize() error = nil, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("buffer has %d bytes after failed Normalize, want 0", buf.Len())
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		resource string
		fixture  string
		want     int
	}{
		{resource: "deployments", fixture: "deployments.csv", want: 4},
		{resource: "media", fixture: "media.csv", want: 5},
		{resource: "observations", fixture: "observations.csv", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			res, ok := Lookup(tt.resource)
			if !ok {
				t.Fatalf("Lookup(%s) not found", tt.resource)
			}
			got, err := res.Count(bytes.NewReader(readFixture(t, tt.fixture)))
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}
