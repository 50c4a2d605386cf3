// Package themes applies named post-processing transformations — library,
// chest, dark, web floor, chasm, spinner, rotating platforms — to
// qualifying discovered rooms. The seven variants are a closed set
// dispatched by an exhaustive switch rather than data-driven lookup,
// since each one's qualification and application rule is bespoke enough
// that a generic table would just be the switch statement in disguise.
package themes
