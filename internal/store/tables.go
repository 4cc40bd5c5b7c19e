package store

// tables.go declares the SQL shape of the three resource tables plus the
// import log. Column lists must stay in sync with the row builders in
// store.go; both follow the declared field order of the schemas.

const ddlImports = `
CREATE TABLE IF NOT EXISTS imports (
	id          uuid PRIMARY KEY,
	resource    text NOT NULL,
	row_count   bigint NOT NULL,
	imported_at timestamptz NOT NULL
)`

const ddlDeployments = `
CREATE TABLE IF NOT EXISTS deployments (
	deployment_id          text NOT NULL,
	location_id            text,
	location_name          text,
	latitude               double precision NOT NULL,
	longitude              double precision NOT NULL,
	coordinate_uncertainty double precision,
	deployment_start       text NOT NULL,
	deployment_end         text NOT NULL,
	setup_by               text,
	camera_id              text,
	camera_model           text,
	camera_delay           integer,
	camera_height          double precision,
	camera_depth           double precision,
	camera_tilt            integer,
	camera_heading         integer,
	detection_distance     double precision,
	timestamp_issues       boolean,
	bait_use               boolean,
	feature_type           text,
	habitat                text,
	deployment_groups      text,
	deployment_tags        text,
	deployment_comments    text
)`

const ddlMedia = `
CREATE TABLE IF NOT EXISTS media (
	media_id       text NOT NULL,
	deployment_id  text NOT NULL,
	capture_method text,
	"timestamp"    text NOT NULL,
	file_path      text NOT NULL,
	file_public    boolean NOT NULL,
	file_name      text,
	file_mediatype text NOT NULL,
	exif_data      text,
	favorite       boolean,
	media_comments text
)`

const ddlObservations = `
CREATE TABLE IF NOT EXISTS observations (
	observation_id             text NOT NULL,
	deployment_id              text NOT NULL,
	media_id                   text,
	event_id                   text,
	event_start                text NOT NULL,
	event_end                  text NOT NULL,
	observation_level          text NOT NULL,
	observation_type           text NOT NULL,
	camera_setup_type          text,
	scientific_name            text,
	count                      integer,
	life_stage                 text,
	sex                        text,
	behavior                   text,
	individual_id              text,
	individual_position_radius double precision,
	individual_position_angle  double precision,
	individual_speed           double precision,
	bbox_x                     double precision,
	bbox_y                     double precision,
	bbox_width                 double precision,
	bbox_height                double precision,
	classification_method      text,
	classified_by              text,
	classification_timestamp   text,
	classification_probability double precision,
	observation_tags           text,
	observation_comments       text
)`

var deploymentColumns = []string{
	"deployment_id",
	"location_id",
	"location_name",
	"latitude",
	"longitude",
	"coordinate_uncertainty",
	"deployment_start",
	"deployment_end",
	"setup_by",
	"camera_id",
	"camera_model",
	"camera_delay",
	"camera_height",
	"camera_depth",
	"camera_tilt",
	"camera_heading",
	"detection_distance",
	"timestamp_issues",
	"bait_use",
	"feature_type",
	"habitat",
	"deployment_groups",
	"deployment_tags",
	"deployment_comments",
}

var mediaColumns = []string{
	"media_id",
	"deployment_id",
	"capture_method",
	"timestamp",
	"file_path",
	"file_public",
	"file_name",
	"file_mediatype",
	"exif_data",
	"favorite",
	"media_comments",
}

var observationColumns = []string{
	"observation_id",
	"deployment_id",
	"media_id",
	"event_id",
	"event_start",
	"event_end",
	"observation_level",
	"observation_type",
	"camera_setup_type",
	"scientific_name",
	"count",
	"life_stage",
	"sex",
	"behavior",
	"individual_id",
	"individual_position_radius",
	"individual_position_angle",
	"individual_speed",
	"bbox_x",
	"bbox_y",
	"bbox_width",
	"bbox_height",
	"classification_method",
	"classified_by",
	"classification_timestamp",
	"classification_probability",
	"observation_tags",
	"observation_comments",
}
