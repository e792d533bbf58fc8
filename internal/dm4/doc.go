// Package dm4 implements the legacy .dm4 registration file format
// consumed by the official competition-management program. The format
// is a foreign, bit-exact contract: field order, literal punctuation
// and the lossy byte encoding all mirror what the official program
// expects and none of it may be normalized or "fixed".
package dm4
