package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Municipality string
	Category     string
	Since        string
	Until        string
	State        string
	Size         int
	ReportName   string
	ReportType   []string
	Dir          string
	Ranking      bool
	CompareWith  string
	DataOutput   bool
	List         bool
	Health       bool
	Page         int
	PageSize     int
}
