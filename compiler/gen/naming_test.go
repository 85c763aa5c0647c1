package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaming(t *testing.T) {
	tests := []struct {
		in, goName, file string
	}{
		{"id", "ID", "id_wrapper.go"},
		{"userName", "UserName", "user_name_wrapper.go"},
		{"User", "User", "user_wrapper.go"},
		{"BlogPost", "BlogPost", "blog_post_wrapper.go"},
		{"createdAt", "CreatedAt", "created_at_wrapper.go"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.goName, GoName(tt.in))
			assert.Equal(t, tt.goName+"Wrapper", WrapperName(tt.in))
			assert.Equal(t, tt.goName+"Resolver", ResolverName(tt.in))
			assert.Equal(t, tt.file, wrapperFilename(tt.in))
		})
	}
	assert.Equal(t, "root_node.go", rootFilename("RootNode"))
}
