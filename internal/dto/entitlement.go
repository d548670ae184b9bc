package dto

// EntitlementRequest is what a client device presents: its own code, the
// token it was handed, and the package it wants.
type EntitlementRequest struct {
	DeviceCode  string `json:"device"  validate:"required"`
	TokenValue  string `json:"token"   validate:"required"`
	PackageName string `json:"package" validate:"required"`
	Version     string `json:"version" validate:"required"`
}

type EntitlementResponse struct {
	APKName    string `json:"apkName"`
	APKPath    string `json:"apkPath"`
	APKVersion string `json:"apkVersion"`
}
