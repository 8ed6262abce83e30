package firestore

const MaxProjectDocumentsForTest = maxProjectDocuments

var CheckProjectSizeForTest = checkProjectSize
