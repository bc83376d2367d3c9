package hui

import (
	"github.com/leandrodaf/hui/sdk/contracts"
)

// NewHUIClient creates a new HUI client with the specified options.
// It applies default options and initializes the client.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.ClientHUI: An instance of the HUI client.
//   - error: An error, if any occurred during the creation of the client.
func NewHUIClient(opts ...contracts.Option) (contracts.ClientHUI, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return client, nil
}
