package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIURL       string   `json:"api_url" yaml:"api_url" toml:"api_url"`
	Municipality string   `json:"municipality" yaml:"municipality" toml:"municipality"`
	Category     string   `json:"category" yaml:"category" toml:"category"`
	Since        string   `json:"since" yaml:"since" toml:"since"`
	Until        string   `json:"until" yaml:"until" toml:"until"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	Size         int      `json:"size" yaml:"size" toml:"size"`
}
