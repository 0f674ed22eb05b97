// Command phototime reconciles photo export JSON sidecars with their media
// files and rewrites file timestamps to the recorded capture time.
package main
