// Package domain holds the registration domain model: belts, weight
// categories, gender categories, the club and athlete records, and the
// bucketing step that groups pending registrations into per-category
// tournament records.
package domain
