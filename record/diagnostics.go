package record

// NumericExtreme mirrors a numfmt.Extreme diagnostic without coupling
// this package to the number decoder: a number word fell in the custom
// format's undefined region, and decoding continued with a best-effort
// value rather than aborting.
type NumericExtreme struct {
	Word   uint32
	Reason string
}
