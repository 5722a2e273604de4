// Package rfcio holds the ambient I/O concerns a counting engine needs
// around it but that rfc itself stays free of: loading class/Wöhler
// parameters from a YAML config file for hosts that keep counter
// configuration outside Go literals, and a thin structured-log adapter
// for correlating engine instances (rfc.Context.ID) across log lines.
package rfcio
