// Package mocks provides centralized mock implementations for testing.
//
// Two styles are used: testify mocks (TestifyMock*) for interaction
// assertions, and function-field mocks (Mock*) when a test only needs to
// stub return values.
//
//	st := &mocks.TestifyMockDocumentStore{}
//	st.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
package mocks
