package house

const (
	MsgHouseNotFound    = "House not found"
	MsgLandlordNotFound = "Landlord not found"
	MsgLandlordsOnly    = "Only landlords can create listings"
	MsgMissingFields    = "Missing required fields"
	MsgProfileRequired  = "Complete your landlord profile first"
	MsgProfileNotFound  = "Landlord profile not found"
	MsgNotOwner         = "You do not have permission to update this listing"
	MsgInvalidStatus    = "Invalid status"
	MsgInvalidHouseType = "Invalid house type"
	MsgInvalidAmenity   = "Invalid amenity"
	MsgInvalidPrice     = "Price filters must be numeric"
	MsgCreated          = "House listing created successfully"
	MsgUpdated          = "House listing updated successfully"
	MsgDeleted          = "House listing deleted successfully"
	MsgStatusUpdated    = "House status updated successfully"
	MsgPhotosUploaded   = "Photos uploaded successfully"
	MsgNoPhotos         = "At least one photo is required"
	MsgTooManyPhotos    = "Too many photos in one upload"
	MsgPhotoTooLarge    = "Photo exceeds the maximum size"
	MsgUnsupportedPhoto = "Unsupported image format"
	MsgStorageDisabled  = "Photo storage is not configured"
)
