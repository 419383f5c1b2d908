// Package main runs alcocalcd, the HTTP front end of the alcoholometry
// calculator. Every endpoint is a pure function of its query parameters; the
// daemon holds no state besides rate-limit buckets and metrics.
//
// HTTP API
//
//	GET /v1/density?abv=&t=
//	    Density, mass fraction and contraction factor at t °C. All query
//	    parameters are required.
//
//	GET /v1/convert/abv?abv=
//	GET /v1/convert/mass-fraction?p=
//	    Convert between %vol at 20 °C and mass fraction.
//
//	GET /v1/volume?mass=&abv=&t=
//	GET /v1/mass?volume=&abv=&t=
//	GET /v1/ethanol?volume=&abv=&t=
//	    Mass/volume conversion and pure ethanol content.
//
//	POST /v1/dilute { "source_mass_g", "source_abv", "target_abv" }
//	    Water to add by weight.
//
//	GET /v1/hydrometer?reading=&t=
//	    True strength of a hydrometer reading taken at t.
//
//	GET /v1/temperature?t=
//	GET /v1/tables
//	GET /healthz
//
// Behaviour
//
//   - Responses are JSON. Errors carry {"error": "..."}: 400 for invalid
//     input, 404 and 405 for unknown paths and methods, 413 for bodies over
//     64 KiB, 429 once a client address exceeds its rate. Forwarding headers
//     do not affect rate limiting.
//   - Every response carries an X-Request-Id header.
//   - Prometheus metrics are served separately at /metrics on metrics_listen.
//   - Configuration comes from ALCOCALC_* variables (a .env file is loaded
//     first when present), then ~/.alcocalc.yaml or the file named by
//     ALCOCALC_CONFIG_FILE.
package main
