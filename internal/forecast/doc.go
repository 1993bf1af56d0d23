// Package forecast fetches hourly precipitation forecasts from the
// Open-Meteo API and evaluates the 24-hour rain window.
//
// An hour counts as rain when its precipitation probability reaches the
// configured percentage threshold or its hourly amount reaches the
// millimeter threshold; the window verdict is true if any hour in the next
// 24 hours trips either one.
package forecast
