package args

type CallbackOption func(string) error

// General holds the options shared by all commands
var General struct {
	Verbose               []bool         `yaml:"verbose"  short:"v" long:"verbose" env:"BASE128_VERBOSITY" description:"Show verbose debug information. Repeat for more detail."`
	ConfigurationFile     CallbackOption `yaml:"-"        short:"c" long:"config"  env:"BASE128_CONFIG"    description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"logFile"          short:"l" long:"log-file"           env:"BASE128_LOG_FILE"           description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string         `yaml:"logFormat"        short:"f" long:"log-format"         env:"BASE128_LOG_FORMAT"         description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string         `yaml:"logColor"         short:"C" long:"log-color"          env:"BASE128_LOG_COLOR"          description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool           `yaml:"logFullTimestamp"           long:"log-full-timestamp" env:"BASE128_LOG_FULL_TIMESTAMP" description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"logReportCaller"            long:"log-report-caller"  env:"BASE128_LOG_REPORT_CALLER"  description:"If you wish to add the calling method as a field."`
}
