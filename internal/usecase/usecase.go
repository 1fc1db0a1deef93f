// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase
