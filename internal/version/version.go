package version

// AppVersion is overridden at build time:
//
//	go build -ldflags "-X defterm/internal/version.AppVersion=v1.2.3"
var AppVersion = "dev"
