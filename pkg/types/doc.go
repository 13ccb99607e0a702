// Package types defines the entity records curated through the audiogram
// admin API (animals, experiments, data points, publications, taxa), the
// reference option type used to populate select fields, the client Config,
// and the standard errors shared by gateways and controllers.
package types
