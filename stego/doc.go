/*
Package stego hides a text message in the colour channels of a raster.

The message length is stored little-endian in pixel (0,0), the last pixel
carries a fixed sentinel, and the message bytes are written three per pixel
at addresses evenly spaced between them. Every stored byte may be offset by
an additive shift.
*/
package stego
