package cache

// Keyer derives cache keys from request options.
type Keyer interface {
	MazeKey(opts MazeKeyOpts) string
	ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string
}

// MazeKeyOpts holds every input that determines a generated maze.
type MazeKeyOpts struct {
	Columns   int
	Rows      int
	Mask      string
	Algorithm string
	Seed      uint64
}

// ArtifactKeyOpts holds the render options of an artifact.
type ArtifactKeyOpts struct {
	Format   string
	CellSize int
	Heatmap  bool
	Path     bool
	Root     string
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// MazeKey returns "maze:<sha256>" over the generation inputs.
func (DefaultKeyer) MazeKey(opts MazeKeyOpts) string {
	return hashKey(string(KindMaze), opts.Columns, opts.Rows, opts.Mask, opts.Algorithm, opts.Seed)
}

// ArtifactKey returns "artifact:<sha256>" over the maze hash and render options.
func (DefaultKeyer) ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string {
	return hashKey(string(KindArtifact), mazeHash, opts.Format, opts.CellSize, opts.Heatmap, opts.Path, opts.Root)
}
