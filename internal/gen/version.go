package gen

// Version of imagename-gen.
const Version = "v1.0.0"
