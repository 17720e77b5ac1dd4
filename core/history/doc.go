// Package history persists a summary of every comparison run with GORM.
//
// Only counters and the run outcome are stored. The full verdict, with every
// finding and diff, lives in the report archive under the same run id.
package history
