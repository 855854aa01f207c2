package config

const (
	defaultOutputDir         = "subs"
	defaultStagingDir        = "audio"
	defaultStagingStaleHours = 24
	defaultLanguages         = "zh-Hans,zh-Hant,en.*"
	defaultDownloaderBinary  = "yt-dlp"
	defaultCookiePath        = "cookies.txt"
	defaultTranscriberBinary = "whisper"
	defaultTranscriberModel  = "small"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults. Output
// and staging directories default to subs/ and audio/ under the current
// working directory, matching the tool's single-workspace model.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:         defaultOutputDir,
			StagingDir:        defaultStagingDir,
			StagingStaleHours: defaultStagingStaleHours,
		},
		Subtitles: Subtitles{
			Languages: defaultLanguages,
		},
		Downloader: Downloader{
			Binary:     defaultDownloaderBinary,
			CookiePath: defaultCookiePath,
		},
		Transcriber: Transcriber{
			Binary: defaultTranscriberBinary,
			Model:  defaultTranscriberModel,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
