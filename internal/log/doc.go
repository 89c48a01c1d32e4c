// Package log contains the Logger used by the entire application. The Logger is a wrapper around zap.SugaredLogger.
// There should be a single instance of the Logger in the application, and it should be injected into any structs that need to log.
// Categories (ui, camera, scene, asset) are zap named loggers derived from that instance.
package log
