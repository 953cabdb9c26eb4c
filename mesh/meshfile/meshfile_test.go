package meshfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/oxybsp/oxybsp/mesh"
	"github.com/oxybsp/oxybsp/triangle"
)

type RoundTripSuite struct {
	suite.Suite
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripSuite))
}

func tri(v0, v1, v2 [3]float32, texIndex uint16) triangle.Triangle {
	return triangle.Triangle{
		Vertices:  [3][3]float32{v0, v1, v2},
		TexIndex:  texIndex,
		TexCoords: [3][2]float32{{0, 0}, {1, 0}, {0, 1}},
	}
}

func (s *RoundTripSuite) TestBuildSaveLoadRoundTrips() {
	soup := []triangle.Triangle{
		tri([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 1, 0}, 0),
		tri([3]float32{0, 0, 0}, [3]float32{1, 1, 0}, [3]float32{0, 1, 0}, 1),
	}
	m, _, err := mesh.Build(soup, triangle.Table{Names: []string{"tex0", "tex1"}})
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(Save(&buf, m))

	loaded, err := Load(&buf)
	s.Require().NoError(err)
	s.Require().NotNil(loaded)

	s.Require().Equal(m.TextureNames, loaded.TextureNames)
	s.Require().Equal(m.Vertices, loaded.Vertices)
	s.Require().Equal(m.Groups, loaded.Groups)
	s.Require().Equal(m.AABB, loaded.AABB)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("nope!")
	m, err := Load(buf)
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestLoadRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(Magic[:])
	buf.WriteByte(0x01)
	m, err := Load(&buf)
	require.NoError(t, err)
	require.Nil(t, m)
}
