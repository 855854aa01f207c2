// Package ytdlp wraps the yt-dlp CLI: subtitle track listing, subtitle
// download with SRT conversion, and best-audio download.
package ytdlp
