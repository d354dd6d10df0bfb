package bedio

// Record is one parsed BED-family line, with the file's end-exclusive
// end coordinate already converted to the core's closed-interval Last
// (original_source/src/main.rs's read_bed_file: "last -= 1; // bed is
// end-exclusive").
type Record struct {
	Chrom       string
	First, Last int32
}
