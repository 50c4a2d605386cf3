// Package content places monsters and objects onto an already-carved
// grid via dart-throwing rejection sampling, honoring the minimum
// distances IsGoodPlaceLocation enforces against staircases and existing
// monster tiles.
package content
