package farm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jgrattan/fieldhand/internal/farm"
)

func TestNameByID(t *testing.T) {
	farms := []*farm.Farm{
		{ID: 1, Name: "Green Valley Farm"},
		{ID: 2, Name: "Sunrise Acres"},
	}

	assert.Equal(t, "Green Valley Farm", farm.NameByID(farms, 1))
	assert.Equal(t, "Sunrise Acres", farm.NameByID(farms, 2))
	assert.Equal(t, "Unknown Farm", farm.NameByID(farms, 99))
	assert.Equal(t, "Unknown Farm", farm.NameByID(nil, 1))
}
