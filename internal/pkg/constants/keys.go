package constants

// viper keys
const (
	ViperDBConnection         = "db_connection"
	ViperListenAddr           = "listen_addr"
	ViperQueryTimeout         = "query_timeout"
	ViperGeoJSONPath          = "geojson_path"
	ViperAthenaDatabase       = "athena_database"
	ViperAthenaWorkgroup      = "athena_workgroup"
	ViperAthenaOutputLocation = "athena_output_location"
	ViperAWSRegion            = "aws_region"
	ViperRDSHost              = "rds_host"
	ViperRDSPort              = "rds_port"
	ViperRDSUser              = "rds_user"
	ViperRDSPassword          = "rds_password"
	ViperRDSDB                = "rds_db"
)

// db_connection values
const (
	BackendAthena = "athena"
	BackendRDS    = "rds"
)

// CategoryAll is the category filter value that means "no filter".
const CategoryAll = "전체"

// Categories is the fixed category list offered by the dashboard filter.
var Categories = []string{
	CategoryAll,
	"식량작물",
	"채소류",
	"특용작물",
	"과일류",
	"축산물",
	"수산물",
}

// DefaultRegion is preselected when present in the region list.
const DefaultRegion = "서울"
