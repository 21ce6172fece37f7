// Package resistor resolves resistances against the standard preferred-value
// series and converts between resistances and 3-band color codes.
//
// The standard series is the E12 decade table repeated from 1 Ω to 10 MΩ
// (85 values). [Series.Nearest] finds the closest member with a stable
// ascending scan, and [Series.SuggestCombinations] lists two-resistor series
// or parallel pairs that beat the best single value.
//
// [Decode] turns digit, digit and multiplier bands into ohms. [Encode]
// decomposes a resistance into the same three bands; it does not snap to the
// series, so callers that want the code of a buyable part use [StandardCode].
//
// [SeriesResistance], [ParallelResistance] and [CombineNetwork] compute the
// equivalent resistance of simple networks.
package resistor
